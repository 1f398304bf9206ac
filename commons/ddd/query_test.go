// SPDX-License-Identifier: GPL-3.0-only

package ddd

import "testing"

func TestCodesCoverAllAssignments(t *testing.T) {
	got := Codes()
	if len(got) != 67 {
		t.Errorf("Expected 67 DDD codes, got %d", len(got))
	}

	seen := map[string]bool{}
	for _, c := range got {
		if len(c) != 2 {
			t.Errorf("Expected two-digit code, got %q", c)
		}
		if seen[c] {
			t.Errorf("Duplicate code %q in registry", c)
		}
		seen[c] = true
	}

	// São Paulo capital plus the other multi-code SP entries.
	for _, c := range []string{"11", "12", "13", "14", "15", "16", "17", "18", "19"} {
		if !seen[c] {
			t.Errorf("Expected SP code %q in registry", c)
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, c := range []string{"11", "21", "61", "99"} {
		if !IsValid(c) {
			t.Errorf("Expected %q to be valid", c)
		}
	}
	for _, c := range []string{"00", "10", "20", "23", "25", "26", "29", "30", "36", "39", "40", "50", "52", "56", "60", "70", "72", "76", "78", "80", "90", "1", "111", ""} {
		if IsValid(c) {
			t.Errorf("Expected %q to be invalid", c)
		}
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("11")
	if !ok {
		t.Fatal("Expected lookup of 11 to succeed")
	}
	if e.State != "SP" {
		t.Errorf("Expected state SP for DDD 11, got %s", e.State)
	}
	if e.Region != "Sudeste" {
		t.Errorf("Expected region Sudeste for DDD 11, got %s", e.Region)
	}

	if _, ok := Lookup("00"); ok {
		t.Error("Expected lookup of 00 to fail")
	}
}

func TestByState(t *testing.T) {
	sp := ByState("sp")
	if len(sp) != 9 {
		t.Errorf("Expected 9 SP codes, got %d", len(sp))
	}
	df := ByState("DF")
	if len(df) != 1 || df[0].Code != "61" {
		t.Errorf("Expected DF to map to 61 only, got %v", df)
	}
	if got := ByState("XX"); len(got) != 0 {
		t.Errorf("Expected no codes for unknown state, got %v", got)
	}
}
