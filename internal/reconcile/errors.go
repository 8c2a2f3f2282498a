package reconcile

import "errors"

// Fatal validation classes. Every one of these means the output would
// misgrade a student if the run continued, so none is ever downgraded to a
// warning.
var (
	ErrTaskSetMismatch    = errors.New("task set does not match rubric")
	ErrPointCountMismatch = errors.New("accumulated point count does not match rubric")
	ErrPointsExceeded     = errors.New("earned points exceed declared maximum")
	ErrRosterMismatch     = errors.New("accumulated students do not match gradebook roster")
	ErrPointsDrift        = errors.New("gradebook point value does not match rubric")
)
