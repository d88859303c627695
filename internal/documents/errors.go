package documents

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound covers both missing documents and documents owned by another
// user. The two cases are deliberately indistinguishable to prevent id
// enumeration.
var ErrNotFound = errors.New("document not found")

// ValidationError reports the first violated upload constraint with a
// user-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// InvalidStateError rejects an operation attempted from a status that does
// not permit it. The message names the actual current status.
type InvalidStateError struct {
	Status string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("document is already %s", strings.ToLower(e.Status))
}
