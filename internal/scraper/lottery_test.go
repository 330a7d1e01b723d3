package scraper

import (
	"testing"
	"time"
)

func TestCanonicalLotteryName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		// Compound names must resolve before the fragments they contain.
		{"Triple Zamorano 1pm", "Triple Zamorano"},
		{"Resultados Zamorano", "Triple Zamorano"},
		{"TripleA tarde", "Triple A"},
		{"Triple Caliente", "Triple"},
		{"Lotería del Zulia", "Lotería del Zulia"},
		{"loteria tachira", "Lotería del Táchira"},
		{"Guacharo Activo 4pm", "Guácharo Activo"},
		{"la granjita noche", "La Granjita"},
		// Unknown names are title-cased.
		{"chance astral", "Chance Astral"},
	}

	for _, tt := range tests {
		if got := canonicalLotteryName(tt.in); got != tt.want {
			t.Errorf("canonicalLotteryName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLotteryRow_KeepsLeadingZeros(t *testing.T) {
	result, ok := parseLotteryRow(RawRow{Category: "zulia", Value: "09"}, "2025-01-10")
	if !ok {
		t.Fatal("row should parse")
	}
	if result.WinningNumber != "09" {
		t.Errorf("leading zero lost: got %q", result.WinningNumber)
	}
}

func TestParseLotteryRow_RejectsSingleDigit(t *testing.T) {
	if _, ok := parseLotteryRow(RawRow{Category: "zulia", Value: "9"}, "2025-01-10"); ok {
		t.Error("single digit should not parse as a lottery number")
	}
}

func TestNormalizeClockTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"13:00", "13:00:00", true},
		{"9:15", "09:15:00", true},
		{"sorteo 16:30 pm", "16:30:00", true},
		{"tarde", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := normalizeClockTime(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("normalizeClockTime(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeLotteryTime_CoarseHints(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1 pm", "13:00:00"},
		{"4 pm", "16:00:00"},
		{"7 pm", "19:00:00"},
		{"", "12:00:00"},
	}

	for _, tt := range tests {
		if got := normalizeLotteryTime(tt.in); got != tt.want {
			t.Errorf("normalizeLotteryTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLotteryValidate(t *testing.T) {
	ex := NewLotteryExtractor()

	if err := ex.Validate(nil); err == nil {
		t.Error("empty batch should be invalid")
	}

	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	batch, err := ex.Extract(`[{"category":"zulia","value":"842","time":"13:00"}]`, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ex.Validate(batch); err != nil {
		t.Errorf("valid batch rejected: %v", err)
	}

	batch[0].DrawDate = "10/01/2025"
	if err := ex.Validate(batch); err == nil {
		t.Error("malformed draw date should be invalid")
	}
}
