package model

import "fmt"

// The core raises exactly two classes of failure. Malformed input is never
// one of them: the normaliser coerces instead of rejecting.

// LoadError reports a failed listing fetch. The in-memory list keeps its
// previous value and the error stays visible until the next successful load.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load orders: %v", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// WriteError reports a failed insert, update or delete. The operation was
// not applied locally; callers surface it once and may retry with the same
// input.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s order: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
