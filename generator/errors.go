// SPDX-License-Identifier: GPL-3.0-only

package generator

import "errors"

var (
	ErrInvalidCount   = errors.New("invalid count, must be a positive integer")
	ErrInvalidDDD     = errors.New("invalid DDD, not an assigned Brazilian area code")
	ErrInvalidMode    = errors.New("invalid generation mode")
	ErrExhaustedSpace = errors.New("number space exhausted within the attempts budget")
)
