package users

import (
	"fmt"

	"github.com/dmitrijs2005/userdir/internal/common"
)

// ValidationError reports a rejected lookup argument.
// It matches common.ErrorValidation with errors.Is.
type ValidationError struct {
	ID int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid user ID: %d", e.ID)
}

func (e *ValidationError) Unwrap() error {
	return common.ErrorValidation
}
