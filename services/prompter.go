package services

// Prompter abstracts the interactive confirm/prompt dialogs so the
// controllers stay testable. Handlers adapt request fields into one;
// tests use fixed answers.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(message string) bool

	// PromptText asks for a free-text answer. ok is false when the
	// caller declined or supplied nothing.
	PromptText(message string) (text string, ok bool)
}

// StaticPrompter answers every prompt with fixed values.
type StaticPrompter struct {
	ConfirmAnswer bool
	TextAnswer    string
}

func (p StaticPrompter) Confirm(string) bool {
	return p.ConfirmAnswer
}

func (p StaticPrompter) PromptText(string) (string, bool) {
	return p.TextAnswer, p.TextAnswer != ""
}
