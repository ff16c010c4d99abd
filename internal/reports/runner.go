package reports

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
)

// Sink receives every successful query result, e.g. for export.
type Sink interface {
	Write(q Query, res *Result) error
}

// Runner executes the report steps in order. Each mutation commits in its
// own transaction; each query runs on a connection of its own.
type Runner struct {
	db     *gorm.DB
	out    io.Writer
	log    *zap.Logger
	params Params
	sink   Sink
}

// NewRunner accepts a nil sink.
func NewRunner(db *gorm.DB, out io.Writer, log *zap.Logger, params Params, sink Sink) *Runner {
	return &Runner{db: db, out: out, log: log, params: params, sink: sink}
}

// Run stops at the first failing mutation. Query failures are printed and
// the run carries on.
func (r *Runner) Run(ctx context.Context) error {
	r.separator("Caregivers Platform: Database Queries")

	section := ""
	for _, step := range Steps(r.params) {
		if step.Section != section {
			section = step.Section
			r.separator(section)
		}
		if step.Note != "" {
			fmt.Fprintln(r.out, step.Note)
		}

		if step.Mutation != nil {
			fmt.Fprintf(r.out, "%s...\n", step.Title)
			affected, err := r.exec(ctx, *step.Mutation)
			if err != nil {
				r.log.Error("report step failed", zap.String("step", step.Title), zap.Error(err))
				return fmt.Errorf("%s: %w", step.Title, err)
			}
			fmt.Fprintf(r.out, "✓ %s (%d rows affected)\n", step.Done, affected)
		}

		for _, q := range step.Checks {
			r.check(ctx, q)
		}
	}

	r.separator("END OF QUERIES")
	fmt.Fprintln(r.out, "All queries executed successfully!")
	return nil
}

func (r *Runner) exec(ctx context.Context, st Statement) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(st.SQL, st.Args...)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, httperr.Classify(err)
}

func (r *Runner) check(ctx context.Context, q Query) {
	fmt.Fprintf(r.out, "\n%s\n%s\n", q.Title, strings.Repeat("-", ruleWidth))

	var res *Result
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		var err error
		res, err = Fetch(conn, q)
		return err
	})
	if err != nil {
		r.log.Warn("report query failed", zap.String("query", q.Title), zap.Error(err))
		fmt.Fprintf(r.out, "Error: %v\n\n", err)
		return
	}

	res.Print(r.out)
	fmt.Fprintln(r.out)

	if r.sink == nil {
		return
	}
	if err := r.sink.Write(q, res); err != nil {
		r.log.Warn("export query result", zap.String("sheet", q.Sheet), zap.Error(err))
	}
}

func (r *Runner) separator(title string) {
	line := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(r.out, "\n%s\n  %s\n%s\n\n", line, title, line)
}
