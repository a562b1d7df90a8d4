package domain_test

import (
	"testing"

	"flashcards/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		reply    string
		expected int
		want     domain.Classification
	}{
		{"EXIT", 8, domain.ClassExit},
		{"8", 8, domain.ClassMatch},
		{"0", 0, domain.ClassMatch},
		{"UNCLEAR", 8, domain.ClassUnclear},
		{"9", 8, domain.ClassIncorrect},
		{"exit", 8, domain.ClassIncorrect},
		{" 8", 8, domain.ClassIncorrect},
		{"eight", 8, domain.ClassIncorrect},
		{"", 8, domain.ClassIncorrect},
	}

	for _, tt := range tests {
		if got := domain.Classify(tt.reply, tt.expected); got != tt.want {
			t.Errorf("Classify(%q, %d): got %s, want %s", tt.reply, tt.expected, got, tt.want)
		}
	}
}

func TestProblem_Question(t *testing.T) {
	p := domain.NewProblem(7, 5)
	if p.Question() != "7 x 5" {
		t.Errorf("Question: got %q, want 7 x 5", p.Question())
	}
	if p.Expected != 35 {
		t.Errorf("Expected: got %d, want 35", p.Expected)
	}
}
