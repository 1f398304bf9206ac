// SPDX-License-Identifier: GPL-3.0-only

package generator

// IsTrivial reports whether an 8-digit subscriber sequence is too
// predictable to resemble a real number. The rejection set is exactly:
//
//   - all eight digits identical (00000000, 77777777)
//   - a full-length ascending run of consecutive digits mod 10
//     (01234567, 78901234)
//   - a full-length descending run of consecutive digits mod 10
//     (87654321, 21098765)
//   - a two-digit block repeated four times (12121212, 90909090)
//
// Anything else passes. Sequences of the wrong length or with
// non-digit bytes are rejected outright.
func IsTrivial(seq string) bool {
	if len(seq) != subscriberLen {
		return true
	}
	for i := 0; i < len(seq); i++ {
		if seq[i] < '0' || seq[i] > '9' {
			return true
		}
	}

	allSame := true
	ascending := true
	descending := true
	for i := 1; i < len(seq); i++ {
		prev, cur := int(seq[i-1]-'0'), int(seq[i]-'0')
		if cur != prev {
			allSame = false
		}
		if cur != (prev+1)%10 {
			ascending = false
		}
		if cur != (prev+9)%10 {
			descending = false
		}
	}
	if allSame || ascending || descending {
		return true
	}

	blockRepeat := true
	for i := 2; i < len(seq); i++ {
		if seq[i] != seq[i%2] {
			blockRepeat = false
			break
		}
	}
	return blockRepeat
}
