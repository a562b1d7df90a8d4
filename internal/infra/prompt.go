package infra

import "fmt"

// InterpretSystemPrompt instructs a chat model to reply with the bare number, EXIT or UNCLEAR.
const InterpretSystemPrompt = "You are a helpful assistant that interprets spoken math answers. " +
	"The user will provide a transcribed text of a spoken answer to a multiplication problem. " +
	"Your task is to interpret this text and determine if it matches the expected answer. " +
	"If it does, respond with just the number. " +
	"If the user says 'stop', 'quit', or 'exit', respond with 'EXIT'. " +
	"Otherwise, respond with 'UNCLEAR'."

func InterpretUserPrompt(transcript string, expected int) string {
	return fmt.Sprintf("The transcribed answer is '%s'. The expected answer is %d. What did the user say?", transcript, expected)
}
