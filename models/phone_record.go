// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

// PhoneRecord is one generated number inside a batch. Numero is the full
// 9-digit mobile portion.
type PhoneRecord struct {
	ID        uint   `gorm:"primaryKey"`
	E164      string `gorm:"size:16;not null;uniqueIndex:idx_batch_e164"`
	National  string `gorm:"size:24;not null"`
	DDD       string `gorm:"size:2;not null;index"`
	Numero    string `gorm:"size:9;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	BatchID   uint           `gorm:"uniqueIndex:idx_batch_e164"`
	Batch     Batch          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func init() {
	AllModels = append(AllModels, &PhoneRecord{})
}
