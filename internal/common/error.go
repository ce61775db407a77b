package common

import "fmt"

// PartialInsertError reports a compound insert whose entity row was written
// while the follow-up credential registration failed. The entity row stays in
// its store; nothing is rolled back.
type PartialInsertError struct {
	Entity string
	Key    string
	Err    error
}

func (e *PartialInsertError) Error() string {
	return fmt.Sprintf("%s %q stored but credential registration failed: %v", e.Entity, e.Key, e.Err)
}

// Unwrap exposes both ErrorPartialInsert and the registration cause to errors.Is.
func (e *PartialInsertError) Unwrap() []error {
	return []error{ErrorPartialInsert, e.Err}
}
