package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberpro-api/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	accountKind string,
	accountID uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		AccountKind: accountKind,
		AccountID:   accountID,
		Action:      action,
		Entity:      entity,
		EntityID:    entityID,
		Metadata:    metaJSON,
	}

	return l.db.Create(&entry).Error
}
