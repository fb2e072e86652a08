package form3

import (
	"fmt"
	"runtime/debug"
)

// shapeErr is returned when a mesh constructor rejects its parameters.
type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// catch converts a panic raised while building a mesh into a shapeErr.
// It must be deferred directly.
func catch(err *error) {
	if a := recover(); a != nil {
		*err = &shapeErr{
			panicObj: a,
			stack:    string(debug.Stack()),
		}
	}
}
