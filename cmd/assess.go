package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dpq/internal/dpq"
	"dpq/pkg/domain"
	"dpq/pkg/logger"
)

// assessCommand constructs the 'assess' subcommand that scores a questionnaire
// offline and prints a plain-text report. The input file maps question numbers
// ("1" through "45") to 7-point scale answers.
func assessCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Scores a questionnaire from a JSON file and prints the report",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			path, _ := cmd.Flags().GetString("responses")
			dogID, _ := cmd.Flags().GetString("dog-id")

			raw, err := os.ReadFile(path)
			if err != nil {
				logger.Fatal(ctx, "could not read responses file", zap.Error(err))
			}

			var responses domain.Responses
			if err := json.Unmarshal(raw, &responses); err != nil {
				logger.Fatal(ctx, "could not parse responses file", zap.Error(err))
			}
			if err := responses.Validate(); err != nil {
				logger.Fatal(ctx, "invalid responses", zap.Error(err))
			}

			scores := dpq.Score(responses)
			fmt.Println(dpq.Report(dogID, scores, len(responses))) //nolint: forbidigo
		},
	}

	cmd.Flags().String("responses", "", "Path to the responses JSON file")
	cmd.Flags().String("dog-id", "unknown", "Identifier printed in the report header")
	_ = cmd.MarkFlagRequired("responses")

	return cmd
}
