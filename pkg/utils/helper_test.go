package utils

import (
	"strings"
	"testing"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		def  int
		want int
	}{
		{"", 10, 10},
		{"7", 10, 7},
		{"0", 10, 10},
		{"-3", 1, 1},
		{"abc", 2, 2},
	}
	for _, tt := range tests {
		if got := ParseInt(tt.in, tt.def); got != tt.want {
			t.Errorf("ParseInt(%q, %d) = %d, want %d", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in     string
		want   uint
		wantOK bool
	}{
		{"1", 1, true},
		{" 42 ", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"1.5", 0, false},
		{"99999999999", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseID(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseID(%q) = %d, %v, want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(3.14159); got != 3.14 {
		t.Errorf("Round2(3.14159) = %v", got)
	}
	if got := Round2(4.666); got != 4.67 {
		t.Errorf("Round2(4.666) = %v", got)
	}
}

func TestPagination(t *testing.T) {
	if got := CalculateTotalPages(21, 10); got != 3 {
		t.Errorf("CalculateTotalPages(21, 10) = %d, want 3", got)
	}
	if got := CalculateTotalPages(0, 10); got != 0 {
		t.Errorf("CalculateTotalPages(0, 10) = %d, want 0", got)
	}
	if got := CalculateTotalPages(5, 0); got != 0 {
		t.Errorf("CalculateTotalPages(5, 0) = %d, want 0", got)
	}
	if got := CalculateOffset(3, 10); got != 20 {
		t.Errorf("CalculateOffset(3, 10) = %d, want 20", got)
	}
	if got := CalculateOffset(0, 10); got != 0 {
		t.Errorf("CalculateOffset(0, 10) = %d, want 0", got)
	}
}

type sample struct {
	Name   string `json:"name" validate:"required,max=5"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
	Sort   string `json:"sort" validate:"omitempty,oneof=asc desc"`
}

func TestValidateStruct(t *testing.T) {
	if errs := ValidateStruct(sample{Name: "ok", Rating: 3}); errs != nil {
		t.Fatalf("valid struct errors = %v", errs)
	}

	errs := ValidateStruct(sample{Name: "toolong", Rating: 9, Sort: "up"})
	want := map[string]string{
		"name":   "Maximum length is 5",
		"rating": "Maximum value is 5",
		"sort":   "Must be one of: asc, desc",
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Errorf("errs[%q] = %q, want %q", field, errs[field], msg)
		}
	}

	errs = ValidateStruct(sample{Rating: 0})
	if errs["name"] != "This field is required" || errs["rating"] != "Minimum value is 1" {
		t.Errorf("errs = %v", errs)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	got := FormatValidationErrors(map[string]string{"title": "b", "rating": "a"})
	if got != "rating: a; title: b" {
		t.Errorf("FormatValidationErrors() = %q", got)
	}
	if !strings.Contains(FormatValidationErrors(map[string]string{"x": "y"}), "x: y") {
		t.Error("single error not formatted")
	}
}
