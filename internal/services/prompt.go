package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/assessment-gateway/internal/models"
)

const QuestionGenerationSystemPrompt = "You are an expert educational content creator. " +
	"You create clear, accurate assessment questions with correct answers and helpful explanations. " +
	"Always respond with valid JSON only."

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionGenerationPrompt creates the user prompt for question generation
func (pb *PromptBuilder) BuildQuestionGenerationPrompt(req models.GenerationRequest) string {
	description := ""
	if strings.TrimSpace(req.Description) != "" {
		description = fmt.Sprintf("\nAdditional context: %s\n", strings.TrimSpace(req.Description))
	}

	return fmt.Sprintf(`Generate %d %s difficulty %s questions about "%s".
%s
Formatting rules:
%s

Return ONLY a JSON array, with no markdown and no commentary. Each element must have this shape:
{
  "id": <sequential number starting at 1>,
  "question": "<question text>",
  "type": "%s",
%s  "correctAnswer": "<the correct answer>",
  "explanation": "<why the answer is correct>",
  "points": 10
}`,
		req.NumQuestions, req.Difficulty, req.QuestionType, req.Topic,
		description,
		formattingRules(req.QuestionType),
		req.QuestionType,
		optionsLine(req.QuestionType))
}

func formattingRules(questionType models.QuestionType) string {
	switch questionType {
	case models.QuestionTypeMultipleChoice:
		return "- Each question must have exactly 4 options.\n" +
			"- Exactly one option is correct; correctAnswer must match that option's text exactly."
	case models.QuestionTypeTrueFalse:
		return "- options must be exactly [\"True\", \"False\"].\n" +
			"- correctAnswer must be either \"True\" or \"False\"."
	default:
		return "- Do not include an options field.\n" +
			"- correctAnswer should be a short model answer."
	}
}

func optionsLine(questionType models.QuestionType) string {
	switch questionType {
	case models.QuestionTypeMultipleChoice:
		return "  \"options\": [\"<option A>\", \"<option B>\", \"<option C>\", \"<option D>\"],\n"
	case models.QuestionTypeTrueFalse:
		return "  \"options\": [\"True\", \"False\"],\n"
	default:
		return ""
	}
}
