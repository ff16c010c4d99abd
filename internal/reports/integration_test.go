package reports

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	appdb "github.com/BruksfildServices01/caregivers-platform/internal/db"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

func integrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, appdb.Migrate(context.Background(), gdb))
	require.NoError(t, gdb.Exec(`TRUNCATE "user", audit_log RESTART IDENTITY CASCADE`).Error)

	return gdb
}

func rateOf(t *testing.T, gdb *gorm.DB, email string) string {
	t.Helper()
	var rate string
	require.NoError(t, gdb.Raw(`
SELECT c.hourly_rate::text
FROM caregiver c JOIN "user" u ON u.user_id = c.caregiver_user_id
WHERE u.email = ?`, email).Scan(&rate).Error)
	return rate
}

func TestIntegration_FullReport(t *testing.T) {
	gdb := integrationDB(t)
	ctx := context.Background()

	seeded, err := appdb.Seed(ctx, gdb)
	require.NoError(t, err)
	require.True(t, seeded)

	var out bytes.Buffer
	require.NoError(t, NewRunner(gdb, &out, zap.NewNop(), DefaultParams(), nil).Run(ctx))

	assert.Equal(t, "10.29", rateOf(t, gdb, "arman.armanov@example.kz"))
	assert.Equal(t, "11.00", rateOf(t, gdb, "dana.seitkali@example.kz"))
	assert.Equal(t, "22.00", rateOf(t, gdb, "yerlan.nurlanov@example.kz"))

	var phone string
	require.NoError(t, gdb.Raw(`SELECT phone_number FROM "user" WHERE email = ?`, "arman.armanov@example.kz").Scan(&phone).Error)
	assert.Equal(t, "+77773414141", phone)

	var aminaJobs, kabanbayMembers int64
	require.NoError(t, gdb.Raw(`
SELECT COUNT(*) FROM job j JOIN "user" u ON u.user_id = j.member_user_id
WHERE u.given_name = 'Amina' AND u.surname = 'Aminova'`).Scan(&aminaJobs).Error)
	require.NoError(t, gdb.Raw(`SELECT COUNT(*) FROM address WHERE street = 'Kabanbay Batyr'`).Scan(&kabanbayMembers).Error)
	assert.Zero(t, aminaJobs)
	assert.Zero(t, kabanbayMembers)

	res, err := Fetch(gdb, Query{SQL: ApplicantCountSQL})
	require.NoError(t, err)
	counts := map[string]int64{}
	for _, row := range res.Rows {
		counts[row[1].(string)] = row[2].(int64)
	}
	require.Contains(t, counts, "Timur Zhaksylykov")
	assert.Zero(t, counts["Timur Zhaksylykov"])

	assert.Contains(t, out.String(), "END OF QUERIES")
	assert.NotContains(t, out.String(), "Error:")
}

func TestIntegration_AboveAverageIsStrict(t *testing.T) {
	gdb := integrationDB(t)
	ctx := context.Background()

	newCaregiver := func(email string, rate float64) uint {
		u := models.User{Email: email, GivenName: email, Surname: "X", City: "Astana", PhoneNumber: "+7", Password: "hash"}
		require.NoError(t, gdb.Create(&u).Error)
		require.NoError(t, gdb.Omit(clause.Associations).Create(&models.Caregiver{CaregiverUserID: u.UserID, Gender: "f", CaregivingType: "babysitter", HourlyRate: rate}).Error)
		return u.UserID
	}
	u := models.User{Email: "member@x.kz", GivenName: "M", Surname: "M", City: "Astana", PhoneNumber: "+7", Password: "hash"}
	require.NoError(t, gdb.Create(&u).Error)
	require.NoError(t, gdb.Omit(clause.Associations).Create(&models.Member{MemberUserID: u.UserID}).Error)

	book := func(caregiverID uint, hours float64) {
		require.NoError(t, gdb.Omit(clause.Associations).Create(&models.Appointment{
			CaregiverUserID: caregiverID,
			MemberUserID:    u.UserID,
			AppointmentDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			AppointmentTime: "09:00:00",
			WorkHours:       hours,
			Status:          "confirmed",
		}).Error)
	}

	book(newCaregiver("a@x.kz", 10), 2)
	book(newCaregiver("b@x.kz", 10), 2)

	res, err := Fetch(gdb.WithContext(ctx), Query{SQL: AboveAverageSQL})
	require.NoError(t, err)
	assert.Empty(t, res.Rows)

	book(newCaregiver("c@x.kz", 30), 2)

	res, err = Fetch(gdb.WithContext(ctx), Query{SQL: AboveAverageSQL})
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "c@x.kz", res.Rows[0][0])
}
