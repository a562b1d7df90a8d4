package application

import "fmt"

type Score struct {
	Correct   int
	Incorrect int
}

func (s Score) Attempts() int {
	return s.Correct + s.Incorrect
}

// Average is the percentage of correct attempts, 0 before the first attempt.
func (s Score) Average() float64 {
	if s.Attempts() == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts()) * 100
}

func (s Score) AverageString() string {
	return fmt.Sprintf("%.1f%%", s.Average())
}

func (s Score) String() string {
	return fmt.Sprintf("Correct: %d, Incorrect: %d, Average: %s", s.Correct, s.Incorrect, s.AverageString())
}
