package httperr

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var integrityCodes = map[string]string{
	"23502": "not_null_violation",
	"23503": "foreign_key_violation",
	"23505": "unique_violation",
	"23514": "check_violation",
}

// Classify maps a database error onto the taxonomy. Errors that are already
// classified pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return err
	}
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Kind: KindNotFound, Code: "not_found", Message: "record not found", Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPg(pgErr)
	}

	if isConnectivity(err) {
		return Connectivity(err)
	}

	return Internal(err)
}

func classifyPg(pgErr *pgconn.PgError) error {
	message := pgErr.Message
	if pgErr.Detail != "" {
		message += " (" + pgErr.Detail + ")"
	}

	switch {
	case strings.HasPrefix(pgErr.Code, "23"):
		code, ok := integrityCodes[pgErr.Code]
		if !ok {
			code = "integrity_violation"
		}
		return &Error{Kind: KindIntegrity, Code: code, Message: message, Err: pgErr}
	case strings.HasPrefix(pgErr.Code, "22"):
		return &Error{Kind: KindValidation, Code: "invalid_value", Message: message, Err: pgErr}
	case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P"):
		return Connectivity(pgErr)
	}

	return Internal(pgErr)
}

func isConnectivity(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	if pgconn.Timeout(err) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
