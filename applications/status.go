package applications

import (
	"errors"
	"fmt"
)

// Status is the review state of a driver application. It is a closed
// enumeration, anything outside of it is rejected at the boundary.
type Status string

const (
	// StatusPending is the initial state of every submission
	StatusPending Status = "pending"
	// StatusApproved means the operator accepted the driver
	StatusApproved Status = "approved"
	// StatusRejected means the operator turned the driver down
	StatusRejected Status = "rejected"
)

// ErrUnknownStatus indicates a status outside the closed enumeration
var ErrUnknownStatus = errors.New("unknown application status")

// ParseStatus maps free form input onto the status enumeration
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}
