package pdf

import (
	"errors"
	"fmt"
)

// ErrNoPlan is returned when Render is called without a plan.
var ErrNoPlan = errors.New("no document plan")

// RenderError reports a failure inside the PDF backend.
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("pdf %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
