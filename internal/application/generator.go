package application

import (
	"math/rand/v2"

	"flashcards/internal/domain"
)

type ProblemSource interface {
	Generate() domain.Problem
}

// ProblemGenerator draws both operands uniformly from [min, max]. The caller
// guarantees min <= max.
type ProblemGenerator struct {
	min  int
	max  int
	intN func(n int) int
}

// NewProblemGenerator uses rng when given, the global source otherwise.
func NewProblemGenerator(min, max int, rng *rand.Rand) *ProblemGenerator {
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}
	return &ProblemGenerator{min: min, max: max, intN: intN}
}

func (g *ProblemGenerator) Generate() domain.Problem {
	span := g.max - g.min + 1
	return domain.NewProblem(g.min+g.intN(span), g.min+g.intN(span))
}
