// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"fmt"

	"celgen-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Run(conn *gorm.DB) error {
	m := gormigrate.New(conn, gormigrate.DefaultOptions, List())
	return m.Migrate()
}

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "001_backfill_batch_bids",
			Migrate: func(tx *gorm.DB) error {
				var batches []models.Batch
				if err := tx.Where("bid IS NULL OR bid = ?", uuid.Nil.String()).
					Find(&batches).Error; err != nil {
					return fmt.Errorf("failed to fetch batches without BID: %w", err)
				}

				for i := range batches {
					if err := tx.Model(&batches[i]).Update("bid", uuid.New()).Error; err != nil {
						return fmt.Errorf("failed to backfill BID for batch %d: %w", batches[i].ID, err)
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
		{
			ID: "002_normalize_record_numero",
			Migrate: func(tx *gorm.DB) error {
				// Early exports stored only the 8-digit subscriber tail in
				// numero; the column now carries the full 9-digit mobile.
				var records []models.PhoneRecord
				if err := tx.Where("LENGTH(numero) = ?", 8).Find(&records).Error; err != nil {
					return fmt.Errorf("failed to fetch legacy records: %w", err)
				}

				for i := range records {
					if err := tx.Model(&records[i]).Update("numero", "9"+records[i].Numero).Error; err != nil {
						return fmt.Errorf("failed to normalize record %d: %w", records[i].ID, err)
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
	}
}
