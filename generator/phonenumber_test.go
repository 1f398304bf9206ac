// SPDX-License-Identifier: GPL-3.0-only

package generator

import "testing"

func TestPhoneNumberFormats(t *testing.T) {
	p := PhoneNumber{DDD: "11", Subscriber: "98765432"}

	if got := p.Mobile(); got != "998765432" {
		t.Errorf("Expected mobile 998765432, got %s", got)
	}
	if got := p.E164(); got != "+5511998765432" {
		t.Errorf("Expected E.164 +5511998765432, got %s", got)
	}
	if got := p.National(); got != "(11) 9 9876-5432" {
		t.Errorf("Expected national (11) 9 9876-5432, got %s", got)
	}
	if got := p.Key(); got != "11998765432" {
		t.Errorf("Expected key 11998765432, got %s", got)
	}
}

func TestPhoneNumberFormatsWithLeadingZeros(t *testing.T) {
	p := PhoneNumber{DDD: "85", Subscriber: "00417206"}

	if got := p.E164(); got != "+5585900417206" {
		t.Errorf("Expected E.164 +5585900417206, got %s", got)
	}
	if got := p.National(); got != "(85) 9 0041-7206" {
		t.Errorf("Expected national (85) 9 0041-7206, got %s", got)
	}
}
