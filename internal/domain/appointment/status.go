package appointment

import (
	"strings"

	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDeclined  Status = "declined"
)

// Statuses lists the accepted values in form order.
func Statuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusDeclined}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeclined:
		return true
	}
	return false
}

// ParseStatus accepts exactly the stored spelling.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", httperr.Validation("invalid_status",
			"invalid status "+quote(raw)+": must be one of pending, confirmed, declined")
	}
	return s, nil
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
