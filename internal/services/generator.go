package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"alfredoptarigan/assessment-gateway/internal/models"
)

type QuestionGenerator interface {
	Generate(ctx context.Context, req models.GenerationRequest) ([]models.GeneratedQuestion, error)
}

// ValidationError is a rejected generation request. The message is what the
// caller sees.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// questionListSchema only pins down the envelope: an array of objects.
// Field-level defaults are applied by normalizeQuestions.
const questionListSchema = `{
	"type": "array",
	"items": {"type": "object"}
}`

const defaultDifficulty = "medium"

type GeneratorOptions struct {
	MaxTokens    int
	Temperature  float32
	MaxQuestions int
}

type questionGenerator struct {
	provider      CompletionProvider
	promptBuilder *PromptBuilder
	validate      *validator.Validate
	schema        *jsonschema.Schema
	opts          GeneratorOptions
}

func NewQuestionGenerator(provider CompletionProvider, opts GeneratorOptions) (QuestionGenerator, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(questionListSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to parse question schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://question-list.json", doc); err != nil {
		return nil, fmt.Errorf("failed to add question schema: %w", err)
	}
	schema, err := c.Compile("schema://question-list.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile question schema: %w", err)
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &questionGenerator{
		provider:      provider,
		promptBuilder: NewPromptBuilder(),
		validate:      v,
		schema:        schema,
		opts:          opts,
	}, nil
}

// Generate implements QuestionGenerator.
func (g *questionGenerator) Generate(ctx context.Context, req models.GenerationRequest) ([]models.GeneratedQuestion, error) {
	req, err := g.validateRequest(req)
	if err != nil {
		return nil, err
	}

	prompt := g.promptBuilder.BuildQuestionGenerationPrompt(req)
	log.Printf("📝 Question generation prompt length: %d characters", len(prompt))

	content, err := g.provider.Complete(ctx, CompletionRequest{
		System:      QuestionGenerationSystemPrompt,
		Prompt:      prompt,
		MaxTokens:   g.opts.MaxTokens,
		Temperature: g.opts.Temperature,
	})
	if err != nil {
		log.Printf("❌ Completion request failed: %v", err)
		var downstream *DownstreamError
		if errors.As(err, &downstream) {
			return nil, err
		}
		return nil, &DownstreamError{Message: msgGenerationFailed, Err: err}
	}

	log.Printf("✅ Completion received: %d characters", len(content))

	questions, err := g.parseQuestions(content, req.QuestionType)
	if err != nil {
		var malformed *MalformedResponseError
		if errors.As(err, &malformed) {
			log.Printf("❌ %s. Raw response: %s", malformed.Reason, truncateForLog(malformed.Raw, rawPayloadLogMaxSize))
		}
		return nil, err
	}

	return questions, nil
}

func (g *questionGenerator) validateRequest(req models.GenerationRequest) (models.GenerationRequest, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		return req, &ValidationError{Message: "Topic is required"}
	}

	if strings.TrimSpace(req.Difficulty) == "" {
		req.Difficulty = defaultDifficulty
	}

	if err := g.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return req, &ValidationError{Message: fmt.Sprintf("%s is invalid", fieldErrs[0].Field())}
		}
		return req, &ValidationError{Message: err.Error()}
	}

	if g.opts.MaxQuestions > 0 && req.NumQuestions > g.opts.MaxQuestions {
		return req, &ValidationError{Message: fmt.Sprintf("numQuestions must not exceed %d", g.opts.MaxQuestions)}
	}

	return req, nil
}

func (g *questionGenerator) parseQuestions(content string, questionType models.QuestionType) ([]models.GeneratedQuestion, error) {
	parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(stripCodeFence(content)))
	if err != nil {
		return nil, &MalformedResponseError{Raw: content, Reason: msgParseFailed, Err: err}
	}

	items, ok := parsed.([]any)
	if !ok {
		return nil, &MalformedResponseError{Raw: content, Reason: msgExpectedArray}
	}

	if err := g.schema.Validate(parsed); err != nil {
		return nil, &MalformedResponseError{Raw: content, Reason: msgExpectedObjects, Err: err}
	}

	return normalizeQuestions(items, questionType), nil
}

// normalizeQuestions forces every element into the published question shape:
// ids are renumbered 1..N and type is the requested one, whatever the model said.
func normalizeQuestions(items []any, questionType models.QuestionType) []models.GeneratedQuestion {
	questions := make([]models.GeneratedQuestion, 0, len(items))

	for i, item := range items {
		q, _ := item.(map[string]any)

		question := models.GeneratedQuestion{
			ID:            i + 1,
			Question:      textOf(q["question"]),
			Type:          questionType,
			CorrectAnswer: textOf(q["correctAnswer"]),
			Explanation:   textOf(q["explanation"]),
			Points:        pointsOf(q["points"]),
		}

		// An empty array counts as absent so true-false still gets its options.
		if opts, ok := q["options"].([]any); ok && len(opts) > 0 {
			question.Options = make([]string, len(opts))
			for j, opt := range opts {
				question.Options[j] = textOf(opt)
			}
		} else if questionType == models.QuestionTypeTrueFalse {
			question.Options = append([]string(nil), models.TrueFalseOptions...)
		}

		questions = append(questions, question)
	}

	return questions
}

func textOf(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "True"
		}
		return "False"
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}

func pointsOf(v any) int {
	var n float64
	switch val := v.(type) {
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return models.DefaultQuestionPoints
		}
		n = f
	case float64:
		n = val
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return models.DefaultQuestionPoints
		}
		n = f
	default:
		return models.DefaultQuestionPoints
	}

	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return models.DefaultQuestionPoints
	}
	if p := int(math.Round(n)); p != 0 {
		return p
	}
	return models.DefaultQuestionPoints
}

// stripCodeFence removes a ```json ... ``` wrapper some models add despite
// being told not to.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	} else {
		text = strings.TrimPrefix(text, "json")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}
