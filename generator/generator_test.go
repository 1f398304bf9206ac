// SPDX-License-Identifier: GPL-3.0-only

package generator

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"celgen-server/commons/ddd"
)

// stuckSource always yields the same value, so every draw after the
// first successful one is a duplicate.
type stuckSource struct{}

func (stuckSource) Int63() int64 { return 73523131 << 32 }
func (stuckSource) Seed(int64)   {}

func TestGenerateAllDDDs(t *testing.T) {
	g := New()
	numbers, err := g.Generate(50, ModeAllDDDs, "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(numbers) != 50 {
		t.Fatalf("Expected 50 numbers, got %d", len(numbers))
	}

	seen := map[string]bool{}
	for _, n := range numbers {
		if !ddd.IsValid(n.DDD) {
			t.Errorf("Number %s carries unassigned DDD %s", n.E164(), n.DDD)
		}
		if !strings.HasPrefix(n.Mobile(), "9") || len(n.Mobile()) != 9 {
			t.Errorf("Expected 9-digit mobile starting with 9, got %s", n.Mobile())
		}
		if IsTrivial(n.Subscriber) {
			t.Errorf("Trivial subscriber sequence emitted: %s", n.Subscriber)
		}
		if seen[n.Key()] {
			t.Errorf("Duplicate number in batch: %s", n.E164())
		}
		seen[n.Key()] = true
	}
}

func TestGenerateFixedDDD(t *testing.T) {
	g := New()
	numbers, err := g.Generate(10, ModeFixedDDD, "11")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(numbers) != 10 {
		t.Fatalf("Expected 10 numbers, got %d", len(numbers))
	}
	for _, n := range numbers {
		if n.DDD != "11" {
			t.Errorf("Expected DDD 11, got %s", n.DDD)
		}
		if !strings.HasPrefix(n.E164(), "+5511") {
			t.Errorf("Expected E.164 prefix +5511, got %s", n.E164())
		}
	}
}

func TestGenerateInvalidCount(t *testing.T) {
	g := New()
	for _, count := range []int{0, -1, -50} {
		if _, err := g.Generate(count, ModeAllDDDs, ""); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("Expected ErrInvalidCount for count %d, got %v", count, err)
		}
	}
}

func TestGenerateInvalidDDD(t *testing.T) {
	g := New()
	for _, code := range []string{"00", "20", "5", "abc", ""} {
		if _, err := g.Generate(5, ModeFixedDDD, code); !errors.Is(err, ErrInvalidDDD) {
			t.Errorf("Expected ErrInvalidDDD for code %q, got %v", code, err)
		}
	}
}

func TestGenerateInvalidMode(t *testing.T) {
	g := New()
	if _, err := g.Generate(5, Mode("SOMETHING_ELSE"), ""); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Expected ErrInvalidMode, got %v", err)
	}
}

func TestGenerateExhaustedSpace(t *testing.T) {
	// A stuck source can never produce a second distinct number, so the
	// attempts budget must trip instead of looping forever.
	g := NewWithSource(stuckSource{})
	numbers, err := g.Generate(2, ModeFixedDDD, "11")
	if !errors.Is(err, ErrExhaustedSpace) {
		t.Fatalf("Expected ErrExhaustedSpace, got %v", err)
	}
	if numbers != nil {
		t.Errorf("Expected no partial results on failure, got %d numbers", len(numbers))
	}
}

func TestGenerateExhaustedSpaceWithTinyBudget(t *testing.T) {
	g := New()
	g.MaxAttempts = 3
	if _, err := g.Generate(1000, ModeFixedDDD, "11"); !errors.Is(err, ErrExhaustedSpace) {
		t.Errorf("Expected ErrExhaustedSpace with a 3-attempt budget, got %v", err)
	}
}

func TestGenerateDeterministicWithSeededSource(t *testing.T) {
	first, err := NewWithSource(rand.NewSource(7)).Generate(20, ModeAllDDDs, "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := NewWithSource(rand.NewSource(7)).Generate(20, ModeAllDDDs, "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Expected identical sequences for identical seeds, diverged at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestGeneratePreservesOrderAndExactCount(t *testing.T) {
	g := NewWithSource(rand.NewSource(99))
	numbers, err := g.Generate(137, ModeAllDDDs, "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(numbers) != 137 {
		t.Errorf("Expected exactly 137 numbers, got %d", len(numbers))
	}
}
