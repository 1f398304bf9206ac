// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestBatchBeforeCreateAssignsBID(t *testing.T) {
	batch := Batch{Mode: "ALL_DDDS", Count: 10}

	if err := batch.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate failed: %v", err)
	}
	if batch.BID == uuid.Nil {
		t.Error("Expected BeforeCreate to assign a batch ID")
	}

	assigned := batch.BID
	if err := batch.BeforeCreate(nil); err != nil {
		t.Fatalf("Second BeforeCreate failed: %v", err)
	}
	if batch.BID != assigned {
		t.Error("Expected BeforeCreate to keep an already-assigned batch ID")
	}
}

func TestAllModelsRegistered(t *testing.T) {
	if len(AllModels) < 4 {
		t.Errorf("Expected at least 4 registered models, got %d", len(AllModels))
	}

	var hasBatch, hasRecord bool
	for _, m := range AllModels {
		switch m.(type) {
		case *Batch:
			hasBatch = true
		case *PhoneRecord:
			hasRecord = true
		}
	}
	if !hasBatch || !hasRecord {
		t.Error("Expected Batch and PhoneRecord to be registered in AllModels")
	}
}
