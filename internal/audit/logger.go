package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

const (
	ActionCreate      = "create"
	ActionUpdate      = "update"
	ActionDelete      = "delete"
	ActionPhotoUpload = "photo_upload"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

// Log records one change. metadata is stored as JSON; a value that cannot
// be marshalled is dropped rather than failing the write.
func (l *Logger) Log(
	ctx context.Context,
	action string,
	entity string,
	entityKey string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		Action:    action,
		Entity:    entity,
		EntityKey: entityKey,
		Metadata:  metaJSON,
	}

	return l.db.WithContext(ctx).Create(&entry).Error
}

const recentLimit = 200

type Filter struct {
	Action string
	Entity string
}

// Recent returns the newest entries first, at most recentLimit of them.
func (l *Logger) Recent(ctx context.Context, f Filter) ([]models.AuditLog, error) {
	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(recentLimit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
