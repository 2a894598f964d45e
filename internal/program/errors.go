// ABOUTME: Error types for program generation and registry lookups.
// ABOUTME: Both indicate authoring defects in static tables and fail closed.
package program

import (
	"fmt"

	"github.com/harperreed/liftlog/internal/models"
)

// UnknownProgramError is returned for an unrecognized program identifier.
type UnknownProgramError struct {
	ID string
}

func (e *UnknownProgramError) Error() string {
	return fmt.Sprintf("unknown program: %q", e.ID)
}

// MissingSchemeError is returned when a lift table has neither a week entry
// nor a base fallback.
type MissingSchemeError struct {
	Program string
	Lift    models.Lift
	Week    int
}

func (e *MissingSchemeError) Error() string {
	return fmt.Sprintf("program %s: no scheme for %s in week %d", e.Program, e.Lift, e.Week)
}
