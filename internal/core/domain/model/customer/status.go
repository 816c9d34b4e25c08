package customer

import (
	"fmt"

	"autoparts/internal/pkg/errs"
)

// Status marks whether a customer account is active. It is informational
// only: no lifecycle rules depend on it, inactive customers simply stop
// receiving proactive messages.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Active is the default status for customers created from inbound messages.
	Active

	// Inactive marks customers excluded from proactive messaging.
	Inactive
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:   "Active",
		Inactive: "Inactive",
	}
}

// StatusFromString parses a status from its canonical name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("customer status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("customer status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status, or "Unknown" for
// invalid values.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
