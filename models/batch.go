// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var AllModels []any

type Batch struct {
	ID        uint      `gorm:"primaryKey"`
	BID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Mode      string    `gorm:"size:32;not null"`
	DDD       *string   `gorm:"size:2;default:null"`
	Count     int       `gorm:"not null"`
	Records   []PhoneRecord
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (batch *Batch) BeforeCreate(tx *gorm.DB) (err error) {
	if batch.BID == uuid.Nil {
		batch.BID = uuid.New()
	}
	return
}

func init() {
	AllModels = append(AllModels, &Batch{})
}
