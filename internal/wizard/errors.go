package wizard

import "fmt"

// ValidationError blocks a step from advancing. It is always recoverable
// by correcting the form; nothing escalates past it.
type ValidationError struct {
	Step   Step
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// DuplicateMobileError means the mobile already belongs to a different
// registration. The user should go through the search flow instead of
// creating a second record.
type DuplicateMobileError struct {
	Mobile string
}

func (e *DuplicateMobileError) Error() string {
	return "this mobile number is already registered, please use the modify registration option"
}

// LookupError wraps a store failure during the mobile uniqueness check or
// search. It blocks advancement: a duplicate must never slip through just
// because the store was unreachable.
type LookupError struct {
	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unable to verify mobile number: %v", e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
