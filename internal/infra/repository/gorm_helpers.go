package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
)

// findOne runs q for a single row. A missing row is (nil, false, nil).
func findOne[T any](q *gorm.DB) (*T, bool, error) {
	var out T
	res := q.Limit(1).Find(&out)
	if res.Error != nil {
		return nil, false, httperr.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}
	return &out, true, nil
}

// replace locks the row matched by where, fails with a not-found error
// when it is missing, and overwrites cols with the values from in. All of
// it runs in one transaction.
func replace[T any](
	ctx context.Context,
	db *gorm.DB,
	entity string,
	cols []string,
	in *T,
	where string,
	args ...any,
) error {

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current T
		res := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(where, args...).
			Limit(1).
			Find(&current)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFound(entity)
		}

		return tx.Model(new(T)).
			Where(where, args...).
			Select(cols).
			Updates(in).Error
	})
	return httperr.Classify(err)
}

// remove deletes the matching rows; deleting nothing is not an error.
func remove[T any](ctx context.Context, db *gorm.DB, where string, args ...any) error {
	err := db.WithContext(ctx).Where(where, args...).Delete(new(T)).Error
	return httperr.Classify(err)
}

func notFound(entity string) error {
	return httperr.NotFound(entity+"_not_found", entity+" not found")
}
