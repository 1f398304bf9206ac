// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventStatus string
type EventCategory string

const (
	Completed EventStatus = "COMPLETED"
	Failed    EventStatus = "FAILED"
	Published EventStatus = "PUBLISHED"
)

const (
	Generate EventCategory = "GENERATE"
	Export   EventCategory = "EXPORT"
	Publish  EventCategory = "PUBLISH"
)

type EventLog struct {
	ID          uint           `gorm:"primaryKey"`
	EID         uuid.UUID      `gorm:"type:uuid;not null;"`
	Category    *EventCategory `gorm:"size:32;default:null"`
	Status      *EventStatus   `gorm:"size:32;default:null"`
	BatchID     *string        `gorm:"size:255;default:null;index"`
	Mode        *string        `gorm:"size:32;default:null"`
	DDD         *string        `gorm:"size:2;default:null"`
	Count       *int           `gorm:"default:null"`
	Description *string        `gorm:"type:text;default:null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (eventLog *EventLog) BeforeCreate(tx *gorm.DB) (err error) {
	eventLog.EID = uuid.New()
	return
}

func init() {
	AllModels = append(AllModels, &EventLog{})
}
