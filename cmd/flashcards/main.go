// Command flashcards quizzes multiplication facts by voice.
//
// Usage:
//
//	flashcards [--config config.yaml]     run the quiz
//	flashcards devices                    list audio input devices
//	flashcards misses                     print the missed-answer log
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
