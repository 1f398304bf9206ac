// SPDX-License-Identifier: GPL-3.0-only

package ddd

// Entry describes one ANATEL-assigned two-digit area code.
type Entry struct {
	Code   string `json:"code"`
	State  string `json:"state"`
	Region string `json:"region"`
}

type LookupIndex struct {
	ByCode  map[string]Entry
	ByState map[string][]Entry
}
