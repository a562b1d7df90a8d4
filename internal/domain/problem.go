package domain

import "fmt"

type Problem struct {
	Operand1 int
	Operand2 int
	Expected int
}

func NewProblem(a, b int) Problem {
	return Problem{Operand1: a, Operand2: b, Expected: a * b}
}

// Question renders the problem the way it is shown and logged, e.g. "7 x 5".
func (p Problem) Question() string {
	return fmt.Sprintf("%d x %d", p.Operand1, p.Operand2)
}

// Miss is one row of the missed-answer log.
type Miss struct {
	Question      string
	CorrectAnswer int
	UserAnswer    string
}
