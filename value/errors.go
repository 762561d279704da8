package value

import "fmt"

// EvalError is a structured runtime fault raised while forcing an
// evaluation: the interpreted program's own error (division by zero,
// out-of-domain operations), not a fault of the testing machinery.
type EvalError struct {
	Op  string
	Msg string
}

func (e *EvalError) Error() string {
	return e.Op + ": " + e.Msg
}

// Errf builds an EvalError for the named operation.
func Errf(op, format string, args ...interface{}) *EvalError {
	return &EvalError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// DivByZero is the canonical division-by-zero fault.
func DivByZero(op string) *EvalError {
	return &EvalError{Op: op, Msg: "division by zero"}
}
