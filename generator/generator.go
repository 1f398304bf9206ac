// SPDX-License-Identifier: GPL-3.0-only

// Package generator produces synthetic Brazilian mobile numbers. It is a
// pure library: no file system, no network, each Generator owns its own
// random source and every Generate call owns its own dedup set.
package generator

import (
	"math/rand"
	"strconv"
	"time"

	"celgen-server/commons/ddd"
)

// Mode selects how area codes are assigned to generated numbers.
type Mode string

const (
	// ModeFixedDDD generates every number under one caller-chosen DDD.
	ModeFixedDDD Mode = "FIXED_DDD"
	// ModeAllDDDs samples a registry DDD uniformly for each number.
	ModeAllDDDs Mode = "ALL_DDDS"
)

const (
	subscriberLen   = 8
	subscriberSpace = 100000000 // 10^8 draws per DDD

	// attemptsPerNumber and minAttempts size the default retry budget
	// that converts a non-terminating run into ErrExhaustedSpace.
	attemptsPerNumber = 20
	minAttempts       = 200
)

type Generator struct {
	rng *rand.Rand

	// MaxAttempts caps the total draws of a single Generate call.
	// Zero derives the cap from the requested count.
	MaxAttempts int
}

// New creates a generator with a time-seeded random source.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource creates a generator over the given source. Handy for
// deterministic runs in tests.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate returns exactly count unique, non-trivial numbers in
// generation order. In ModeFixedDDD every number carries dddCode, which
// must be registry-valid; in ModeAllDDDs dddCode is ignored and each
// number gets a uniformly sampled registry code. There are no partial
// results: on any error the returned slice is nil.
func (g *Generator) Generate(count int, mode Mode, dddCode string) ([]PhoneNumber, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	var pool []string
	switch mode {
	case ModeFixedDDD:
		if !ddd.IsValid(dddCode) {
			return nil, ErrInvalidDDD
		}
	case ModeAllDDDs:
		pool = ddd.Codes()
	default:
		return nil, ErrInvalidMode
	}

	maxAttempts := g.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = count * attemptsPerNumber
		if maxAttempts < minAttempts {
			maxAttempts = minAttempts
		}
	}

	results := make([]PhoneNumber, 0, count)
	seen := make(map[string]bool, count)
	for attempts := 0; len(results) < count; attempts++ {
		if attempts >= maxAttempts {
			return nil, ErrExhaustedSpace
		}

		code := dddCode
		if mode == ModeAllDDDs {
			code = pool[g.rng.Intn(len(pool))]
		}

		tail := g.drawSubscriber()
		if IsTrivial(tail) {
			continue
		}

		number := PhoneNumber{DDD: code, Subscriber: tail}
		if seen[number.Key()] {
			continue
		}
		seen[number.Key()] = true
		results = append(results, number)
	}
	return results, nil
}

func (g *Generator) drawSubscriber() string {
	n := g.rng.Intn(subscriberSpace)
	s := strconv.Itoa(n)
	for len(s) < subscriberLen {
		s = "0" + s
	}
	return s
}
