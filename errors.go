package cardstock

import "fmt"

// StageError reports that a pipeline stage exceeded its timeout or was
// cancelled. It is recoverable: the caller can retry the card, and the
// message names the stage that ran out of time.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("cardstock: %s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
