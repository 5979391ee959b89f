package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/localpulse/reviewlens/config"
	"github.com/localpulse/reviewlens/internal/analyzer"
	"github.com/localpulse/reviewlens/internal/logging"
	"github.com/localpulse/reviewlens/internal/models"
)

// inputEnvelope is the JSON document accepted on stdin or as a file
// argument: business metadata plus the raw review dump.
type inputEnvelope struct {
	Business models.BusinessInfo `json:"business"`
	Reviews  []models.RawReview  `json:"reviews"`
}

type outputEnvelope struct {
	Business models.BusinessInfo   `json:"business"`
	Report   models.AnalysisResult `json:"report"`
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	input, err := readInput(os.Args[1:])
	if err != nil {
		slog.Error("[Main] Failed to read input", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var envelope inputEnvelope
	if err := json.Unmarshal(input, &envelope); err != nil {
		slog.Error("[Main] Failed to parse input", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := validateReviews(envelope.Reviews); err != nil {
		slog.Error("[Main] Invalid input", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("[Main] Starting analysis",
		slog.String("business", envelope.Business.Name),
		slog.Int("reviews", len(envelope.Reviews)))

	result := analyzer.Analyze(envelope.Reviews)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(outputEnvelope{Business: envelope.Business, Report: result}); err != nil {
		slog.Error("[Main] Failed to write report", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func validateReviews(reviews []models.RawReview) error {
	for i, r := range reviews {
		if r.Rating < 1 || r.Rating > 5 {
			return fmt.Errorf("review %d: rating %d out of range 1-5", i, r.Rating)
		}
	}
	return nil
}
