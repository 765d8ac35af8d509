package provider

import (
	"strings"

	"github.com/careflow/careflow/internal/platform/apperr"
)

// CreateCommand is a validated provider-create request.
type CreateCommand struct {
	FullName  string
	Specialty string
}

// ParseCreate converts an untyped request payload into a CreateCommand.
// Checks run in order and the first failure wins; outputs are trimmed.
func ParseCreate(payload map[string]interface{}) (CreateCommand, error) {
	fullName := trimmedString(payload["full_name"])
	if len(fullName) < 2 {
		return CreateCommand{}, apperr.Validation("full_name is required (min 2 chars)")
	}

	specialty := trimmedString(payload["specialty"])
	if len(specialty) < 2 {
		return CreateCommand{}, apperr.Validation("specialty is required (min 2 chars)")
	}

	return CreateCommand{FullName: fullName, Specialty: specialty}, nil
}

// trimmedString returns the trimmed value when the payload field is a
// string, and "" for any other type.
func trimmedString(v interface{}) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
