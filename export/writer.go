// SPDX-License-Identifier: GPL-3.0-only

// Package export writes generated batches in the two flat-file formats:
// a CSV table with header "e164,national,ddd,numero" and a TXT file with
// one E.164 number per line.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"celgen-server/generator"
)

const timestampLayout = "20060102_150405"

// Record is one row of the persisted CSV table. Numero is the full
// 9-digit mobile portion, always starting with 9.
type Record struct {
	E164     string `json:"e164"`
	National string `json:"national"`
	DDD      string `json:"ddd"`
	Numero   string `json:"numero"`
}

var csvHeader = []string{"e164", "national", "ddd", "numero"}

func FromNumbers(numbers []generator.PhoneNumber) []Record {
	records := make([]Record, 0, len(numbers))
	for _, n := range numbers {
		records = append(records, Record{
			E164:     n.E164(),
			National: n.National(),
			DDD:      n.DDD,
			Numero:   n.Mobile(),
		})
	}
	return records
}

// BaseName builds the output base name: the user-chosen base, the DDD
// selector (or "all" for random mode) and a generation timestamp.
func BaseName(base string, mode generator.Mode, dddCode string, ts time.Time) string {
	if base == "" {
		base = "numbers_br"
	}
	if mode == generator.ModeFixedDDD {
		return fmt.Sprintf("%s_ddd_%s_%s", base, dddCode, ts.Format(timestampLayout))
	}
	return fmt.Sprintf("%s_all_%s", base, ts.Format(timestampLayout))
}

// WriteCSVTo writes the header row plus one row per record.
func WriteCSVTo(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write([]string{r.E164, r.National, r.DDD, r.Numero}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTXTTo writes one E.164 number per line.
func WriteTXTTo(w io.Writer, records []Record) error {
	for _, r := range records {
		if _, err := fmt.Fprintln(w, r.E164); err != nil {
			return fmt.Errorf("failed to write TXT line: %w", err)
		}
	}
	return nil
}

// WriteFiles writes <baseName>.csv and <baseName>.txt and returns both
// paths. On any error no guarantee is made about partially written
// files; callers treat the batch as not exported.
func WriteFiles(baseName string, records []Record) (csvPath, txtPath string, err error) {
	csvPath = baseName + ".csv"
	txtPath = baseName + ".txt"

	cf, err := os.Create(csvPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create %s: %w", csvPath, err)
	}
	defer cf.Close()
	if err := WriteCSVTo(cf, records); err != nil {
		return "", "", err
	}

	tf, err := os.Create(txtPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create %s: %w", txtPath, err)
	}
	defer tf.Close()
	if err := WriteTXTTo(tf, records); err != nil {
		return "", "", err
	}

	return csvPath, txtPath, nil
}
