package patient

import (
	"regexp"
	"strings"

	"github.com/careflow/careflow/internal/platform/apperr"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// CreateCommand is a validated patient-create request. ProviderID and
// StatusID are nil when absent or blank; their existence is checked by the
// service, not here.
type CreateCommand struct {
	FullName   string
	Email      string
	Phone      string
	ProviderID *string
	StatusID   *string
}

// AssignProviderCommand is a validated assign-provider request.
type AssignProviderCommand struct {
	ProviderID string
}

// ChangeStatusCommand is a validated change-status request.
type ChangeStatusCommand struct {
	StatusID string
}

// ParseCreate converts an untyped request payload into a CreateCommand.
// Checks run in order and the first failure wins. The stored email is
// lower-cased; all other outputs are trimmed as-is. Blank reference ids
// normalize to nil so an empty string never reads as a dangling reference.
func ParseCreate(payload map[string]interface{}) (CreateCommand, error) {
	fullName := trimmedString(payload["full_name"])
	if len(fullName) < 2 {
		return CreateCommand{}, apperr.Validation("full_name is required (min 2 chars)")
	}

	email := trimmedString(payload["email"])
	if email == "" || !emailPattern.MatchString(email) {
		return CreateCommand{}, apperr.Validation("email is invalid")
	}

	phone := trimmedString(payload["phone"])
	if len(phone) < 5 {
		return CreateCommand{}, apperr.Validation("phone is required (min 5 chars)")
	}

	return CreateCommand{
		FullName:   fullName,
		Email:      strings.ToLower(email),
		Phone:      phone,
		ProviderID: optionalID(payload["provider_id"]),
		StatusID:   optionalID(payload["status_id"]),
	}, nil
}

// ParseAssignProvider requires a non-empty provider_id; whether it resolves
// is checked later.
func ParseAssignProvider(payload map[string]interface{}) (AssignProviderCommand, error) {
	providerID := trimmedString(payload["provider_id"])
	if providerID == "" {
		return AssignProviderCommand{}, apperr.Validation("provider_id is required")
	}
	return AssignProviderCommand{ProviderID: providerID}, nil
}

// ParseChangeStatus requires a non-empty status_id; whether it resolves is
// checked later.
func ParseChangeStatus(payload map[string]interface{}) (ChangeStatusCommand, error) {
	statusID := trimmedString(payload["status_id"])
	if statusID == "" {
		return ChangeStatusCommand{}, apperr.Validation("status_id is required")
	}
	return ChangeStatusCommand{StatusID: statusID}, nil
}

func trimmedString(v interface{}) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func optionalID(v interface{}) *string {
	s := trimmedString(v)
	if s == "" {
		return nil
	}
	return &s
}
