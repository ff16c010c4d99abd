package reports

import (
	"bytes"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock
}

// ======================================================
// STEPS
// ======================================================

func TestSteps_RunInReportOrder(t *testing.T) {
	steps := Steps(DefaultParams())

	var sections []string
	var mutations []string
	for _, s := range steps {
		if len(sections) == 0 || sections[len(sections)-1] != s.Section {
			sections = append(sections, s.Section)
		}
		if s.Mutation != nil {
			mutations = append(mutations, strings.SplitN(s.Title, " ", 2)[0])
		}
	}

	assert.Equal(t, []string{
		sectionCreate, sectionInsert, sectionUpdate, sectionDelete,
		sectionSimple, sectionComplex, sectionDerived, sectionView,
	}, sections)
	assert.Equal(t, []string{"3.1", "3.2", "4.1", "4.2", "Creating"}, mutations)
}

func TestSteps_SheetNamesAreUniqueAndValid(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Steps(DefaultParams()) {
		for _, q := range s.Checks {
			require.NotEmpty(t, q.Sheet, q.Title)
			assert.LessOrEqual(t, len(q.Sheet), 31, q.Sheet)
			assert.NotContains(t, q.Sheet, ":")
			assert.False(t, seen[q.Sheet], "duplicate sheet %s", q.Sheet)
			seen[q.Sheet] = true
		}
	}
	assert.Len(t, seen, 15)
}

func TestSteps_UseParams(t *testing.T) {
	p := DefaultParams()
	p.PhoneGivenName, p.PhoneSurname, p.NewPhone = "Dana", "Seitkali", "+70000000000"

	phone := Steps(p)[2]

	assert.Equal(t, []any{"+70000000000", "Dana", "Seitkali"}, phone.Mutation.Args)
	assert.Equal(t, []any{"Dana", "Seitkali"}, phone.Checks[0].Args)
}

func TestCommissionSQL_KeepsBoundaryAtTen(t *testing.T) {
	assert.Contains(t, CommissionSQL, "WHEN hourly_rate < 10 THEN hourly_rate + 0.3")
	assert.Contains(t, CommissionSQL, "ELSE hourly_rate * 1.10")
	assert.Contains(t, AboveAverageSQL, "HAVING SUM(c.hourly_rate * a.work_hours) > (")
	assert.Contains(t, ApplicantCountSQL, "LEFT JOIN job_application")
}

// ======================================================
// RESULT
// ======================================================

func TestResultPrint_Empty(t *testing.T) {
	var buf bytes.Buffer
	(&Result{Columns: []string{"job_id"}}).Print(&buf)

	assert.Equal(t, "No results found.\n", buf.String())
}

func TestResultPrint_Rows(t *testing.T) {
	var buf bytes.Buffer
	res := &Result{
		Columns: []string{"job_id", "date_applied", "hourly_rate", "note"},
		Rows: [][]any{
			{int64(1), time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), "10.29", nil},
		},
	}

	res.Print(&buf)

	assert.Equal(t,
		"job_id | date_applied | hourly_rate | note\n"+
			strings.Repeat("-", 80)+"\n"+
			"1 | 2025-01-10 | 10.29 | NULL\n",
		buf.String(),
	)
}

func TestFormatValue_TrimsTimeFraction(t *testing.T) {
	assert.Equal(t, "09:00:00", FormatValue("09:00:00.000000"))
	assert.Equal(t, "2025-04-01T09:30:00Z", FormatValue(time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)))
}

func TestFetch_ConvertsBytes(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT job_id, other_requirements FROM job WHERE other_requirements LIKE $1`)).
		WithArgs("%soft-spoken%").
		WillReturnRows(sqlmock.NewRows([]string{"job_id", "other_requirements"}).
			AddRow(int64(2), []byte("Must be soft-spoken.")))

	res, err := Fetch(gdb, Query{
		SQL:  `SELECT job_id, other_requirements FROM job WHERE other_requirements LIKE ?`,
		Args: []any{"%soft-spoken%"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"job_id", "other_requirements"}, res.Columns)
	assert.Equal(t, [][]any{{int64(2), "Must be soft-spoken."}}, res.Rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ======================================================
// RUNNER
// ======================================================

func TestRunner_MutationFailureStopsRun(t *testing.T) {
	gdb, mock := newMockDB(t)
	var out bytes.Buffer

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "user" SET phone_number = $1`)).
		WithArgs("+77773414141", "Arman", "Armanov").
		WillReturnError(errors.New("permission denied for table user"))
	mock.ExpectRollback()

	err := NewRunner(gdb, &out, zap.NewNop(), DefaultParams(), nil).Run(t.Context())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "3.1 Updating phone number of Arman Armanov")
	assert.Contains(t, out.String(), "1. CREATE SQL STATEMENTS")
	assert.NotContains(t, out.String(), "END OF QUERIES")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunner_QueryFailureIsPrintedAndRunContinues(t *testing.T) {
	gdb, mock := newMockDB(t)
	var out bytes.Buffer

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "user" SET phone_number = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT given_name, surname, phone_number FROM "user"`)).
		WillReturnError(errors.New("relation \"user\" does not exist"))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE caregiver`)).
		WillReturnError(errors.New("stop here"))
	mock.ExpectRollback()

	err := NewRunner(gdb, &out, zap.NewNop(), DefaultParams(), nil).Run(t.Context())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "3.2 Adding commission fee")
	assert.Contains(t, out.String(), "✓ Phone number updated successfully (1 rows affected)")
	assert.Contains(t, out.String(), `Error: relation "user" does not exist`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type recordingSink struct {
	sheets []string
}

func (s *recordingSink) Write(q Query, _ *Result) error {
	s.sheets = append(s.sheets, q.Sheet)
	return nil
}

func TestRunner_SuccessfulQueriesReachSink(t *testing.T) {
	gdb, mock := newMockDB(t)
	var out bytes.Buffer
	sink := &recordingSink{}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "user" SET phone_number = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT given_name, surname, phone_number FROM "user"`)).
		WillReturnRows(sqlmock.NewRows([]string{"given_name", "surname", "phone_number"}).
			AddRow("Arman", "Armanov", "+77773414141"))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE caregiver`)).
		WillReturnError(errors.New("stop here"))
	mock.ExpectRollback()

	_ = NewRunner(gdb, &out, zap.NewNop(), DefaultParams(), sink).Run(t.Context())

	assert.Equal(t, []string{"3.1 phone"}, sink.sheets)
	assert.Contains(t, out.String(), "Arman | Armanov | +77773414141")
}

// ======================================================
// XLSX
// ======================================================

func TestXLSXSink_OneSheetPerQuery(t *testing.T) {
	sink, err := NewXLSXSink()
	require.NoError(t, err)

	require.NoError(t, sink.Write(Query{Sheet: "3.2 rates"}, &Result{
		Columns: []string{"caregiver_user_id", "hourly_rate"},
		Rows:    [][]any{{int64(1), "10.29"}, {int64(2), "11.00"}},
	}))
	require.NoError(t, sink.Write(Query{Sheet: "6.2 total hours"}, &Result{
		Columns: []string{"total_hours"},
		Rows:    [][]any{{nil}},
	}))

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, sink.Save(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"3.2 rates", "6.2 total hours"}, f.GetSheetList())

	rows, err := f.GetRows("3.2 rates")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"caregiver_user_id", "hourly_rate"},
		{"1", "10.29"},
		{"2", "11.00"},
	}, rows)

	rows, err = f.GetRows("6.2 total hours")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"total_hours"}, {"NULL"}}, rows)
}
