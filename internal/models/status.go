package models

import (
	"fmt"
	"strings"
	"time"
)

// NormalizeStatus trims an admin-supplied status. Any non-empty value is a
// valid state; pending -> approved is the usual transition.
func NormalizeStatus(status string) (string, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return "", fmt.Errorf("%w: status must not be empty", ErrValidation)
	}
	return status, nil
}

// TransitionTime returns the updated_at for a change made at now. The result
// is always strictly after createdAt.
func TransitionTime(createdAt, now time.Time) time.Time {
	now = now.UTC().Truncate(time.Microsecond)
	if !now.After(createdAt) {
		return createdAt.UTC().Truncate(time.Microsecond).Add(time.Microsecond)
	}
	return now
}
