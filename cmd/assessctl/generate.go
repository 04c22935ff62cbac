package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alfredoptarigan/assessment-gateway/internal/models"
	"alfredoptarigan/assessment-gateway/internal/services"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate assessment questions with the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		description, _ := cmd.Flags().GetString("description")
		questionType, _ := cmd.Flags().GetString("type")
		num, _ := cmd.Flags().GetInt("num")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		cfg := loadConfig(cmd)
		ctx := cmd.Context()

		provider, err := services.NewCompletionProvider(ctx, cfg.Completion)
		if err != nil {
			return fmt.Errorf("init provider: %w", err)
		}

		generator, err := services.NewQuestionGenerator(provider, services.GeneratorOptions{
			MaxTokens:    cfg.Completion.MaxTokens,
			Temperature:  cfg.Completion.Temperature,
			MaxQuestions: cfg.Generation.MaxQuestions,
		})
		if err != nil {
			return fmt.Errorf("init generator: %w", err)
		}

		questions, err := generator.Generate(ctx, models.GenerationRequest{
			Topic:        topic,
			Description:  description,
			QuestionType: models.QuestionType(questionType),
			NumQuestions: num,
			Difficulty:   difficulty,
		})
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), models.GenerationResponse{Questions: questions})
	},
}

func init() {
	generateCmd.Flags().String("topic", "", "Topic the questions cover")
	generateCmd.Flags().String("description", "", "Additional context for the topic")
	generateCmd.Flags().String("type", string(models.QuestionTypeMultipleChoice), "Question type: multiple-choice, true-false or short-answer")
	generateCmd.Flags().Int("num", 5, "Number of questions")
	generateCmd.Flags().String("difficulty", "medium", "Difficulty label")
	_ = generateCmd.MarkFlagRequired("topic")
}
