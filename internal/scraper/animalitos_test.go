package scraper

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCanonicalName_AnimalitoTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lotto Activo 9am", "Animalitos 9am"},
		{"Resultados de la mañana", "Animalitos 9am"},
		{"Sorteo Mediodía", "Animalitos 12pm"},
		{"sorteo de las 12", "Animalitos 12pm"},
		{"La Granjita 16:00", "Animalitos 4pm"},
		{"Sorteo de la tarde", "Animalitos 4pm"},
		{"Resultado 19hs", "Animalitos 7pm"},
		{"Sorteo de la noche", "Animalitos 7pm"},
		// "19" must win over "9": ordering in the table is significant.
		{"sorteo 19", "Animalitos 7pm"},
		// Unknown names pass through untouched.
		{"Ruleta Salvaje", "Ruleta Salvaje"},
	}

	for _, tt := range tests {
		if got := canonicalName(tt.in, animalitoNameTable); got != tt.want {
			t.Errorf("canonicalName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseAnimalitoRow_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
		want  int
	}{
		{"25 El Gallo", true, 25},
		{"0", false, 0},
		{"37", false, 0},
		{"sin resultado", false, 0},
		{"1", true, 1},
		{"36", true, 36},
	}

	for _, tt := range tests {
		result, ok := parseAnimalitoRow(RawRow{Category: "mediodia", Value: tt.value}, "2025-01-10")
		if ok != tt.ok {
			t.Errorf("parseAnimalitoRow(%q) ok = %v, want %v", tt.value, ok, tt.ok)
			continue
		}
		if ok && result.WinningNumber != tt.want {
			t.Errorf("parseAnimalitoRow(%q) number = %d, want %d", tt.value, result.WinningNumber, tt.want)
		}
	}
}

func TestInferAnimalitoTime(t *testing.T) {
	tests := []struct {
		game string
		raw  string
		want string
	}{
		{"Animalitos 9am", "", "09:00:00"},
		{"Animalitos 12pm", "", "12:00:00"},
		{"Animalitos 4pm", "", "16:00:00"},
		{"Animalitos 7pm", "", "19:00:00"},
		// A scraped clock time beats the name-based inference.
		{"Animalitos 9am", "9:15", "09:15:00"},
		{"Desconocido", "", "12:00:00"},
	}

	for _, tt := range tests {
		if got := inferAnimalitoTime(tt.game, tt.raw); got != tt.want {
			t.Errorf("inferAnimalitoTime(%q, %q) = %q, want %q", tt.game, tt.raw, got, tt.want)
		}
	}
}

func TestAnimalitoExtract_SkipsBadRowsKeepsGood(t *testing.T) {
	rows := []RawRow{
		{Category: "mediodia", Value: "25"},
		{Category: "noche", Value: "no hubo sorteo"},
		{Category: "tarde", Value: "7"},
	}
	payload, _ := json.Marshal(rows)

	day := time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC)
	results, err := NewAnimalitoExtractor().Extract(string(payload), day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].GameName != "Animalitos 12pm" || results[0].WinningNumber != 25 {
		t.Errorf("unexpected first result: %+v", results[0])
	}
	if results[0].DrawDate != "2025-01-10" {
		t.Errorf("unexpected draw date: %q", results[0].DrawDate)
	}
}

func TestAnimalitoValidate(t *testing.T) {
	ex := NewAnimalitoExtractor()

	if err := ex.Validate(nil); err == nil {
		t.Error("empty batch should be invalid")
	}

	batch, err := ex.Extract(`[{"category":"mediodia","value":"25"}]`, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ex.Validate(batch); err != nil {
		t.Errorf("valid batch rejected: %v", err)
	}

	batch[0].WinningNumber = 40
	if err := ex.Validate(batch); err == nil {
		t.Error("out-of-range number should be invalid")
	}
}
