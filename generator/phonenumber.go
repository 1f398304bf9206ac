// SPDX-License-Identifier: GPL-3.0-only

package generator

import "fmt"

// PhoneNumber is one generated mobile number. DDD is the two-digit area
// code; Subscriber is the 8-digit tail after the mandatory leading 9
// (the "nono dígito").
type PhoneNumber struct {
	DDD        string `json:"ddd"`
	Subscriber string `json:"subscriber"`
}

// Mobile returns the full 9-digit mobile portion, always starting with 9.
func (p PhoneNumber) Mobile() string {
	return "9" + p.Subscriber
}

// E164 returns the international form, +55 + DDD + 9 + subscriber digits.
func (p PhoneNumber) E164() string {
	return "+55" + p.DDD + p.Mobile()
}

// National returns the Brazilian display form, "(DD) 9 XXXX-XXXX".
func (p PhoneNumber) National() string {
	return fmt.Sprintf("(%s) 9 %s-%s", p.DDD, p.Subscriber[:4], p.Subscriber[4:])
}

// Key identifies the number within a generation run.
func (p PhoneNumber) Key() string {
	return p.DDD + p.Mobile()
}
