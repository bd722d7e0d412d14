package ethcal

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// ErrInvalidDate matches every ValidationError with errors.Is.
var ErrInvalidDate = eris.New("invalid ethiopian date")

// ValidationError reports an Ethiopian date field outside its allowed range.
type ValidationError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %d: must be between %d and %d", e.Field, e.Value, e.Min, e.Max)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDate
}
