package utils

import (
	"testing"
	"time"
)

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(1234.5); got != "$1234.50" {
		t.Fatalf("got %q, want %q", got, "$1234.50")
	}
	if got := FormatCurrency(0); got != "$0.00" {
		t.Fatalf("got %q, want %q", got, "$0.00")
	}
}

func TestFormatPeriod(t *testing.T) {
	d := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	if got := FormatPeriod(d); got != "Jan 2024" {
		t.Fatalf("got %q, want %q", got, "Jan 2024")
	}
}

func TestRiskClass(t *testing.T) {
	cases := map[string]string{
		"High":   "risk-high",
		"Medium": "risk-medium",
		"Low":    "risk-low",
		"":       "risk-unknown",
	}
	for in, want := range cases {
		if got := RiskClass(in); got != want {
			t.Fatalf("RiskClass(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatHealthScore(t *testing.T) {
	if got := FormatHealthScore(82.456); got != "82.5" {
		t.Fatalf("got %q, want %q", got, "82.5")
	}
}

func TestTierClass(t *testing.T) {
	if got := TierClass("Gold"); got != "tier-gold" {
		t.Fatalf("got %q, want %q", got, "tier-gold")
	}
	if got := TierClass("Copper"); got != "tier-unknown" {
		t.Fatalf("got %q, want %q", got, "tier-unknown")
	}
}
