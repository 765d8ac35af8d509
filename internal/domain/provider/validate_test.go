package provider

import (
	"errors"
	"testing"

	"github.com/careflow/careflow/internal/platform/apperr"
)

func TestParseCreate_Valid(t *testing.T) {
	cmd, err := ParseCreate(map[string]interface{}{
		"full_name": "  Dr. B  ",
		"specialty": " Cardio ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.FullName != "Dr. B" {
		t.Errorf("expected trimmed full_name, got %q", cmd.FullName)
	}
	if cmd.Specialty != "Cardio" {
		t.Errorf("expected trimmed specialty, got %q", cmd.Specialty)
	}
}

func TestParseCreate_FullNameFirst(t *testing.T) {
	// First failure wins: an empty payload reports full_name, not specialty.
	_, err := ParseCreate(map[string]interface{}{})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "full_name is required (min 2 chars)" {
		t.Errorf("unexpected message %q", err.Error())
	}

	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestParseCreate_SpecialtyRequired(t *testing.T) {
	cases := []map[string]interface{}{
		{"full_name": "Dr. B"},
		{"full_name": "Dr. B", "specialty": " "},
		{"full_name": "Dr. B", "specialty": "X"},
		{"full_name": "Dr. B", "specialty": 42},
	}
	for i, payload := range cases {
		_, err := ParseCreate(payload)
		if err == nil || err.Error() != "specialty is required (min 2 chars)" {
			t.Errorf("case %d: expected specialty error, got %v", i, err)
		}
	}
}

func TestParseCreate_NonStringFullName(t *testing.T) {
	_, err := ParseCreate(map[string]interface{}{"full_name": 12, "specialty": "Cardio"})
	if err == nil || err.Error() != "full_name is required (min 2 chars)" {
		t.Errorf("expected full_name error for non-string value, got %v", err)
	}
}
