package lessons

import "fmt"

// InvalidFormatError reports a submission that matches none of the
// recognized shapes or fails pass-through validation.
type InvalidFormatError struct {
	Reason string
	Err    error
}

func (e *InvalidFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Invalid lesson format: %s: %v", e.Reason, e.Err)
	}
	return "Invalid lesson format: " + e.Reason
}

func (e *InvalidFormatError) Unwrap() error { return e.Err }

// AmbiguousAnswerError is returned in strict mode when a correct-answer
// reference resolves to no option.
type AmbiguousAnswerError struct {
	ExerciseType string
	Correct      any
}

func (e *AmbiguousAnswerError) Error() string {
	return fmt.Sprintf("ambiguous answer reference %q in %s exercise", stringFromAny(e.Correct), e.ExerciseType)
}
