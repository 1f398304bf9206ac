// SPDX-License-Identifier: GPL-3.0-only

package export

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"celgen-server/generator"
)

var testNumbers = []generator.PhoneNumber{
	{DDD: "11", Subscriber: "98765432"},
	{DDD: "85", Subscriber: "00417206"},
	{DDD: "21", Subscriber: "12349876"},
}

func TestFromNumbers(t *testing.T) {
	records := FromNumbers(testNumbers)
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	first := records[0]
	if first.E164 != "+5511998765432" {
		t.Errorf("Expected E.164 +5511998765432, got %s", first.E164)
	}
	if first.National != "(11) 9 9876-5432" {
		t.Errorf("Expected national (11) 9 9876-5432, got %s", first.National)
	}
	if first.DDD != "11" {
		t.Errorf("Expected DDD 11, got %s", first.DDD)
	}
	if first.Numero != "998765432" {
		t.Errorf("Expected numero 998765432, got %s", first.Numero)
	}
}

func TestBaseName(t *testing.T) {
	ts := time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC)

	got := BaseName("qa_pool", generator.ModeFixedDDD, "11", ts)
	if got != "qa_pool_ddd_11_20260830_140509" {
		t.Errorf("Unexpected fixed-mode base name: %s", got)
	}

	got = BaseName("qa_pool", generator.ModeAllDDDs, "", ts)
	if got != "qa_pool_all_20260830_140509" {
		t.Errorf("Unexpected random-mode base name: %s", got)
	}

	got = BaseName("", generator.ModeAllDDDs, "", ts)
	if !strings.HasPrefix(got, "numbers_br_all_") {
		t.Errorf("Expected default base name, got %s", got)
	}
}

func TestWriteAndReadBack(t *testing.T) {
	records := FromNumbers(testNumbers)
	base := filepath.Join(t.TempDir(), "roundtrip")

	csvPath, txtPath, err := WriteFiles(base, records)
	if err != nil {
		t.Fatalf("WriteFiles failed: %v", err)
	}
	if csvPath != base+".csv" || txtPath != base+".txt" {
		t.Errorf("Unexpected output paths: %s, %s", csvPath, txtPath)
	}

	readBack, err := ReadCSV(csvPath)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(readBack) != len(records) {
		t.Fatalf("Expected %d records after round-trip, got %d", len(records), len(readBack))
	}
	for i := range records {
		if readBack[i] != records[i] {
			t.Errorf("Round-trip changed record %d: %v vs %v", i, records[i], readBack[i])
		}
	}

	lines, err := ReadTXT(txtPath)
	if err != nil {
		t.Fatalf("ReadTXT failed: %v", err)
	}
	if len(lines) != len(records) {
		t.Fatalf("Expected %d TXT lines, got %d", len(records), len(lines))
	}
	for i, line := range lines {
		if line != records[i].E164 {
			t.Errorf("Expected TXT line %d to be %s, got %s", i, records[i].E164, line)
		}
		if !strings.HasPrefix(line, "+55") {
			t.Errorf("Expected E.164 line, got %s", line)
		}
	}
}

func TestReadCSVRejectsUnknownHeader(t *testing.T) {
	base := filepath.Join(t.TempDir(), "bad")
	if _, _, err := WriteFiles(base, nil); err != nil {
		t.Fatalf("WriteFiles failed: %v", err)
	}

	// A TXT file is not a CSV export.
	if _, err := ReadCSV(base + ".txt"); err == nil {
		t.Error("Expected ReadCSV to reject a file without the CSV header")
	}
}
