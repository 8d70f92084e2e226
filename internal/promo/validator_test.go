package promo

import (
	"context"
	"testing"
)

func TestValidatorIsValid(t *testing.T) {
	v := NewValidator([]string{"WELCOME10", "COMBODEAL"})
	ctx := context.Background()

	tests := []struct {
		name string
		code string
		want bool
	}{
		{"known code", "WELCOME10", true},
		{"lowercase input is normalized", "welcome10", true},
		{"surrounding whitespace is trimmed", " COMBODEAL ", true},
		{"unknown code of valid length", "UNKNOWN99", false},
		{"too short", "SHORT", false},
		{"too long", "WAYTOOLONGCODE", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.IsValid(ctx, tt.code); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestValidatorLoadReplacesCodes(t *testing.T) {
	v := NewValidator([]string{"WELCOME10"})
	ctx := context.Background()

	v.Load([]string{"FREEDRINK"})

	if v.IsValid(ctx, "WELCOME10") {
		t.Error("IsValid(WELCOME10) = true after reload, want false")
	}
	if !v.IsValid(ctx, "FREEDRINK") {
		t.Error("IsValid(FREEDRINK) = false after reload, want true")
	}
}

func TestValidatorEmptyCodeSet(t *testing.T) {
	v := NewValidator(nil)
	if v.IsValid(context.Background(), "WELCOME10") {
		t.Error("IsValid() = true with no codes loaded, want false")
	}
}

func TestValidatorGetStats(t *testing.T) {
	v := NewValidator(DefaultCodes())

	stats := v.GetStats()
	if got := stats["total_codes"]; got != len(DefaultCodes()) {
		t.Errorf("total_codes = %v, want %d", got, len(DefaultCodes()))
	}
}

func TestDefaultCodesAreValidLengths(t *testing.T) {
	v := NewValidator(DefaultCodes())
	ctx := context.Background()

	for _, code := range DefaultCodes() {
		if !v.IsValid(ctx, code) {
			t.Errorf("IsValid(%q) = false, want every default code valid", code)
		}
	}
}
