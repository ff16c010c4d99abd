package reports

import (
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"gorm.io/gorm"
)

const ruleWidth = 80

// Result is a query's column names and rows, in select order.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Fetch runs q on tx and reads every row. Byte slices come back as strings.
func Fetch(tx *gorm.DB, q Query) (*Result, error) {
	rows, err := tx.Raw(q.SQL, q.Args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scan(rows)
}

func scan(rows *sql.Rows) (*Result, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	res := &Result{Columns: cols}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		res.Rows = append(res.Rows, vals)
	}
	return res, rows.Err()
}

// Print writes the header, a rule and one " | " joined line per row, or
// "No results found." when there are no rows.
func (r *Result) Print(w io.Writer) {
	if len(r.Rows) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintln(w, strings.Join(r.Columns, " | "))
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	for _, row := range r.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = FormatValue(v)
		}
		fmt.Fprintln(w, strings.Join(cells, " | "))
	}
}

// FormatValue renders a scanned value. Dates at midnight UTC print without
// a clock and NULL prints as NULL.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format(time.RFC3339)
	case string:
		return strings.TrimSuffix(t, ".000000")
	default:
		return fmt.Sprint(t)
	}
}
