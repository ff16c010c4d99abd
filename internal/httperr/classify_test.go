package httperr

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassify_PgIntegrityCodes(t *testing.T) {
	cases := map[string]string{
		"23505": "unique_violation",
		"23503": "foreign_key_violation",
		"23514": "check_violation",
		"23502": "not_null_violation",
		"23P01": "integrity_violation",
	}

	for sqlState, code := range cases {
		t.Run(sqlState, func(t *testing.T) {
			err := Classify(&pgconn.PgError{Code: sqlState, Message: "violation"})

			assert.Equal(t, KindIntegrity, KindOf(err))
			assert.True(t, HasCode(err, code))
		})
	}
}

func TestClassify_IntegrityMessageIncludesDetail(t *testing.T) {
	err := Classify(&pgconn.PgError{
		Code:    "23505",
		Message: `duplicate key value violates unique constraint "idx_user_email"`,
		Detail:  "Key (email)=(a@b.kz) already exists.",
	})

	assert.Equal(t,
		`duplicate key value violates unique constraint "idx_user_email" (Key (email)=(a@b.kz) already exists.)`,
		err.Error(),
	)
}

func TestClassify_DataExceptionIsValidation(t *testing.T) {
	err := Classify(&pgconn.PgError{Code: "22007", Message: "invalid input syntax for type date"})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestClassify_Connectivity(t *testing.T) {
	errs := []error{
		driver.ErrBadConn,
		fmt.Errorf("query: %w", context.DeadlineExceeded),
		&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
		&pgconn.PgError{Code: "08006", Message: "connection failure"},
		&pgconn.PgError{Code: "57P01", Message: "terminating connection due to administrator command"},
	}

	for _, e := range errs {
		assert.Equal(t, KindConnectivity, KindOf(Classify(e)), e.Error())
	}
}

func TestClassify_RecordNotFound(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(Classify(gorm.ErrRecordNotFound)))
}

func TestClassify_PassesThroughClassifiedErrors(t *testing.T) {
	nf := NotFound("job_not_found", "Job not found!")
	assert.Same(t, nf, Classify(nf))

	missing := &MissingFieldError{Fields: []string{"email"}}
	assert.Same(t, error(missing), Classify(missing))
}

func TestClassify_UnknownIsInternal(t *testing.T) {
	boom := errors.New("boom")
	err := Classify(boom)

	assert.Equal(t, KindInternal, KindOf(err))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, Classify(nil))
}

func TestMissingFieldError(t *testing.T) {
	err := fmt.Errorf("bind: %w", &MissingFieldError{Fields: []string{"email", "surname"}})

	assert.Equal(t, KindValidation, KindOf(err))
	assert.Contains(t, err.Error(), "missing required field(s): email, surname")
}
