package domain

type OutcomeKind string

const (
	OutcomeCorrect   OutcomeKind = "correct"
	OutcomeIncorrect OutcomeKind = "incorrect"
	OutcomeUnclear   OutcomeKind = "unclear"
	OutcomeExit      OutcomeKind = "exit"
	OutcomeAborted   OutcomeKind = "aborted"
)

// Outcome is the result of one question cycle. Aborted outcomes carry the error
// that ended the cycle and never change the score or the miss log.
type Outcome struct {
	Kind       OutcomeKind
	Problem    Problem
	Transcript string
	Reply      string
	Err        error
}
