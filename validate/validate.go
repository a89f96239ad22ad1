package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/theaftaab/govassist/form"
)

// ValidationError reports a rejected field value. The conversational flow
// turns it into a localized re-prompt; the raw message is for logs.
type ValidationError struct {
	Field   form.FieldID
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func newError(field form.FieldID, value, msg string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: msg}
}

// Dropdown option sets mirrored from the frontend form definition.
var (
	areaTypes      = []string{"urban area", "rural area"}
	applicantTypes = []string{"individual", "entity", "gpa holder"}
	yesNo          = []string{"yes", "no"}
	yesNoNA        = []string{"yes", "no", "not applicable"}
)

var (
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
	emailRe  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Field validates a proposed value for one felling form field and returns
// the value to store. Dropdown answers are normalized to the frontend's
// casing; district names resolve through the bilingual table. Fields with no
// declared constraint pass through trimmed.
func Field(id form.FieldID, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", newError(id, value, "empty value")
	}

	switch id {
	case form.FellingInAreaType:
		return matchOption(id, v, areaTypes)
	case form.FellingApplicantType:
		return matchOption(id, v, applicantTypes)
	case form.FellingBoundaryDemarcated, form.FellingTreeReservedToGov:
		return matchOption(id, v, yesNo)
	case form.FellingUnconditionalConsent, form.FellingLicenseEnclosed:
		return matchOption(id, v, yesNoNA)
	case form.FellingDistrict, form.FellingApplicantDistrict:
		canonical, ok := ResolveDistrict(v)
		if !ok {
			return "", newError(id, v, "not a Karnataka district")
		}
		return canonical, nil
	case form.FellingKhataNumber, form.FellingPincode, form.FellingMobileNumber:
		if !digitsRe.MatchString(v) {
			return "", newError(id, v, "must contain digits only")
		}
		if id == form.FellingPincode && len(v) != 6 {
			return "", newError(id, v, "pincode must be 6 digits")
		}
		if id == form.FellingMobileNumber && len(v) != 10 {
			return "", newError(id, v, "mobile number must be 10 digits")
		}
		return v, nil
	case form.FellingEmailID:
		if !emailRe.MatchString(v) {
			return "", newError(id, v, "not a valid email address")
		}
		return v, nil
	}
	return v, nil
}

func matchOption(id form.FieldID, v string, options []string) (string, error) {
	lower := strings.ToLower(v)
	for _, opt := range options {
		if lower == opt {
			return opt, nil
		}
	}
	return "", newError(id, v, fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")))
}
