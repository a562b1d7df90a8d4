package domain

import "strconv"

// Sentinels returned by the answer interpreter.
const (
	ReplyExit    = "EXIT"
	ReplyUnclear = "UNCLEAR"
)

type Classification string

const (
	ClassMatch     Classification = "match"
	ClassExit      Classification = "exit"
	ClassUnclear   Classification = "unclear"
	ClassIncorrect Classification = "incorrect"
)

// Classify maps raw interpreter output to a classification. Comparison is exact:
// anything that is neither "EXIT" nor the decimal expected answer is a miss.
func Classify(reply string, expected int) Classification {
	switch reply {
	case ReplyExit:
		return ClassExit
	case strconv.Itoa(expected):
		return ClassMatch
	case ReplyUnclear:
		return ClassUnclear
	default:
		return ClassIncorrect
	}
}
