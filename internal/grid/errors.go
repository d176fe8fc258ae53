package grid

// SolveError describes why a widget could not be placed, or why a solve
// stopped early.
type SolveError struct {
	Message string
}

func (e *SolveError) Error() string {
	return e.Message
}

var (
	// ErrCellOutOfBounds marks a widget whose span reaches past the grid or
	// covers no tracks at all. The rest of the solve continues.
	ErrCellOutOfBounds = &SolveError{Message: "widget span lies outside the grid"}

	// ErrWidgetUnsolvable marks a widget whose minimum size does not fit under
	// the maximum sizes of the tracks it spans. The rest of the solve continues.
	ErrWidgetUnsolvable = &SolveError{Message: "widget size bounds cannot be satisfied"}

	// ErrAbort is returned when the caller stops a solve. Result slots after
	// the one that triggered the abort are left as they were.
	ErrAbort = &SolveError{Message: "solve aborted"}
)
