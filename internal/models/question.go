package models

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeTrueFalse      QuestionType = "true-false"
	QuestionTypeShortAnswer    QuestionType = "short-answer"
)

const DefaultQuestionPoints = 10

// TrueFalseOptions is used when a true-false question comes back without options.
var TrueFalseOptions = []string{"True", "False"}

type GenerationRequest struct {
	Topic        string       `json:"topic"`
	Description  string       `json:"description,omitempty"`
	QuestionType QuestionType `json:"questionType" validate:"required,oneof=multiple-choice true-false short-answer"`
	NumQuestions int          `json:"numQuestions" validate:"gt=0"`
	Difficulty   string       `json:"difficulty"`
}

type GeneratedQuestion struct {
	ID            int          `json:"id"`
	Question      string       `json:"question"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	Points        int          `json:"points"`
}

type GenerationResponse struct {
	Questions []GeneratedQuestion `json:"questions"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
