package application

import "context"

// AnswerInterpreter judges a transcript against the expected product. It replies
// with the bare number on a match, "EXIT" for a stop request, or "UNCLEAR".
type AnswerInterpreter interface {
	Interpret(ctx context.Context, transcript string, expected int) (string, error)
}
