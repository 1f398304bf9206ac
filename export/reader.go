// SPDX-License-Identifier: GPL-3.0-only

package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
)

// ReadCSV reads a file previously written by WriteFiles and returns its
// records. Used by the self-test round-trip check.
func ReadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s has no header row", path)
	}
	header := rows[0]
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("%s has unexpected header %v", path, header)
	}
	for i, col := range csvHeader {
		if header[i] != col {
			return nil, fmt.Errorf("%s has unexpected header %v", path, header)
		}
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 4 {
			return nil, fmt.Errorf("%s has malformed row %v", path, row)
		}
		records = append(records, Record{
			E164:     row[0],
			National: row[1],
			DDD:      row[2],
			Numero:   row[3],
		})
	}
	return records, nil
}

// ReadTXT returns the E.164 lines of a TXT export.
func ReadTXT(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}
