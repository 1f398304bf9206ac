// SPDX-License-Identifier: GPL-3.0-only

// Package ddd holds the registry of valid Brazilian area codes (DDDs).
// The table is the full ANATEL assignment and is read-only for the
// process lifetime.
package ddd

import (
	"sort"
	"strings"
)

var entries = []Entry{
	{"11", "SP", "Sudeste"}, {"12", "SP", "Sudeste"}, {"13", "SP", "Sudeste"},
	{"14", "SP", "Sudeste"}, {"15", "SP", "Sudeste"}, {"16", "SP", "Sudeste"},
	{"17", "SP", "Sudeste"}, {"18", "SP", "Sudeste"}, {"19", "SP", "Sudeste"},
	{"21", "RJ", "Sudeste"}, {"22", "RJ", "Sudeste"}, {"24", "RJ", "Sudeste"},
	{"27", "ES", "Sudeste"}, {"28", "ES", "Sudeste"},
	{"31", "MG", "Sudeste"}, {"32", "MG", "Sudeste"}, {"33", "MG", "Sudeste"},
	{"34", "MG", "Sudeste"}, {"35", "MG", "Sudeste"}, {"37", "MG", "Sudeste"},
	{"38", "MG", "Sudeste"},
	{"41", "PR", "Sul"}, {"42", "PR", "Sul"}, {"43", "PR", "Sul"},
	{"44", "PR", "Sul"}, {"45", "PR", "Sul"}, {"46", "PR", "Sul"},
	{"47", "SC", "Sul"}, {"48", "SC", "Sul"}, {"49", "SC", "Sul"},
	{"51", "RS", "Sul"}, {"53", "RS", "Sul"}, {"54", "RS", "Sul"},
	{"55", "RS", "Sul"},
	{"61", "DF", "Centro-Oeste"}, {"62", "GO", "Centro-Oeste"},
	{"63", "TO", "Norte"}, {"64", "GO", "Centro-Oeste"},
	{"65", "MT", "Centro-Oeste"}, {"66", "MT", "Centro-Oeste"},
	{"67", "MS", "Centro-Oeste"}, {"68", "AC", "Norte"}, {"69", "RO", "Norte"},
	{"71", "BA", "Nordeste"}, {"73", "BA", "Nordeste"}, {"74", "BA", "Nordeste"},
	{"75", "BA", "Nordeste"}, {"77", "BA", "Nordeste"}, {"79", "SE", "Nordeste"},
	{"81", "PE", "Nordeste"}, {"82", "AL", "Nordeste"}, {"83", "PB", "Nordeste"},
	{"84", "RN", "Nordeste"}, {"85", "CE", "Nordeste"}, {"86", "PI", "Nordeste"},
	{"87", "PE", "Nordeste"}, {"88", "CE", "Nordeste"}, {"89", "PI", "Nordeste"},
	{"91", "PA", "Norte"}, {"92", "AM", "Norte"}, {"93", "PA", "Norte"},
	{"94", "PA", "Norte"}, {"95", "RR", "Norte"}, {"96", "AP", "Norte"},
	{"97", "AM", "Norte"}, {"98", "MA", "Nordeste"}, {"99", "MA", "Nordeste"},
}

var index = buildIndex(entries)

var codes = func() []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Code)
	}
	sort.Strings(out)
	return out
}()

func buildIndex(entries []Entry) *LookupIndex {
	idx := &LookupIndex{
		ByCode:  make(map[string]Entry),
		ByState: make(map[string][]Entry),
	}
	for _, e := range entries {
		idx.ByCode[e.Code] = e
		idx.ByState[strings.ToUpper(e.State)] = append(idx.ByState[strings.ToUpper(e.State)], e)
	}
	return idx
}

// Codes returns every valid DDD in ascending order. The returned slice is
// a copy and safe to modify.
func Codes() []string {
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

// All returns the full registry table.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

func IsValid(code string) bool {
	_, ok := index.ByCode[code]
	return ok
}

func Lookup(code string) (Entry, bool) {
	e, ok := index.ByCode[code]
	return e, ok
}

func ByState(uf string) []Entry {
	return index.ByState[strings.ToUpper(uf)]
}
