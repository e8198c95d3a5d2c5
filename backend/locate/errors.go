package locate

import "fmt"

// ExitError records a genuine tool failure (any exit status other than 0 or 1).
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("index tool exited with status %d", e.Code)
}
