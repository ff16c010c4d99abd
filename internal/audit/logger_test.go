package audit

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestLogger_WritesRow(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "audit_log" \("action","entity","entity_key","metadata","created_at"\)`).
		WithArgs("delete", "job", "12", `{"member_user_id":3}`, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err = New(gdb).Log(context.Background(), ActionDelete, "job", "12", map[string]any{"member_user_id": 3})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogger_RecentAppliesFilters(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "audit_log" WHERE action = \$1 AND entity = \$2 ORDER BY created_at DESC,id DESC LIMIT \$3`).
		WithArgs("create", "job", 200).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "entity", "entity_key"}).
			AddRow(2, "create", "job", "5"))

	logs, err := New(gdb).Recent(context.Background(), Filter{Action: "create", Entity: "job"})

	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "5", logs[0].EntityKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}
