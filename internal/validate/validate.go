package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Business rule failures for a movement, in the order they are checked.
var (
	ErrMissingEndpoint = errors.New("either a from or a to location is required")
	ErrSameEndpoint    = errors.New("from and to locations cannot be the same")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Movement checks the business rules for a movement candidate; the first
// failing rule wins. The same checks run on create and update.
func Movement(from, to *uint, qty int) error {
	if from == nil && to == nil {
		return ErrMissingEndpoint
	}
	if from != nil && to != nil && *from == *to {
		return ErrSameEndpoint
	}
	if qty < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// Violations maps field name to a message for inline form errors.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic field validators

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func MaxLen(field, value string, maxLen int, v Violations) {
	if len(value) > maxLen {
		v[field] = fmt.Sprintf("must be at most %d characters", maxLen)
	}
}
