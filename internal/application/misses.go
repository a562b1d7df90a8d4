package application

import "flashcards/internal/domain"

type MissLog interface {
	Append(miss domain.Miss) error
}
