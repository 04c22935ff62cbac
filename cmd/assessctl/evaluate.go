package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"alfredoptarigan/assessment-gateway/internal/models"
	"alfredoptarigan/assessment-gateway/internal/services"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Forward an answers file to the evaluation service",
	RunE: func(cmd *cobra.Command, args []string) error {
		submissionID, _ := cmd.Flags().GetString("submission")
		token, _ := cmd.Flags().GetString("token")
		answersPath, _ := cmd.Flags().GetString("answers")

		raw, err := os.ReadFile(answersPath)
		if err != nil {
			return fmt.Errorf("read answers file: %w", err)
		}

		req := models.EvaluationRequest{
			SubmissionID: models.OpaqueID(submissionID),
			Answers:      json.RawMessage(raw),
		}
		if !req.HasAnswersArray() {
			return errors.New("answers file must contain a JSON array")
		}

		answers, err := req.ToSubmitAnswers()
		if err != nil {
			return err
		}

		cfg := loadConfig(cmd)
		client := services.NewEvaluatorClient(cfg.Evaluator.BaseURL, cfg.Evaluator.Timeout)

		authorization := token
		if authorization != "" && !hasScheme(authorization) {
			authorization = "Bearer " + authorization
		}

		result, err := client.Submit(cmd.Context(), req.SubmissionID.String(), authorization, answers)
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), result)
	},
}

func init() {
	evaluateCmd.Flags().String("submission", "", "Submission identifier")
	evaluateCmd.Flags().String("token", "", "Bearer token forwarded to the evaluator")
	evaluateCmd.Flags().String("answers", "", "Path to a JSON file with [{questionId, answer, confidence?}]")
	_ = evaluateCmd.MarkFlagRequired("submission")
	_ = evaluateCmd.MarkFlagRequired("token")
	_ = evaluateCmd.MarkFlagRequired("answers")
}

// hasScheme reports whether token already carries an auth scheme such as "Bearer".
func hasScheme(token string) bool {
	return strings.Contains(strings.TrimSpace(token), " ")
}
