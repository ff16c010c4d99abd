package handlers

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
)

const dateLayout = "2006-01-02"

var registerTagNames sync.Once

// useFormTagNames makes validation errors report the form field name
// ("given_name") instead of the Go field name.
func useFormTagNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindForm binds a submitted form. Required fields that are absent or
// empty are reported together as one MissingFieldError.
func bindForm(c *gin.Context, dst any) error {
	useFormTagNames()

	err := c.ShouldBindWith(dst, binding.Form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		var missing []string
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				missing = append(missing, fe.Field())
			}
		}
		if len(missing) > 0 {
			return &httperr.MissingFieldError{Fields: missing}
		}
	}

	return httperr.Validation("invalid_form", err.Error())
}

func invalid(field, want string) error {
	return httperr.Validation("invalid_value", field+" must be "+want)
}

func parseID(field, raw string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, invalid(field, "a positive integer")
	}
	return uint(n), nil
}

func parseDecimal(field, raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalid(field, "a number")
	}
	return f, nil
}

func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, invalid(field, "a date (YYYY-MM-DD)")
	}
	return t, nil
}

// parseClock accepts HH:MM or HH:MM:SS and returns HH:MM:SS.
func parseClock(field, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", invalid(field, "a time (HH:MM)")
}
