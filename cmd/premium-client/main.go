// Command premium-client derives the model features from an applicant
// profile and asks the premium API for a risk category.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/samber/lo"

	"premium_api/internal/config"
	"premium_api/internal/domain/entity"
	"premium_api/internal/domain/service/features"
	"premium_api/internal/infrastructure/premiumapi"
	"premium_api/pkg/contextx"
	"premium_api/pkg/httpx"
	"premium_api/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1) //nolint:gocritic
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.LoadClient()
	if err != nil {
		return fmt.Errorf("config.LoadClient: %w", err)
	}

	var profile entity.ApplicantProfile

	fs := flag.NewFlagSet("premium-client", flag.ContinueOnError)
	fs.IntVar(&profile.Age, "age", 30, "age in years")
	fs.Float64Var(&profile.WeightKg, "weight", 65, "weight in kg")
	fs.Float64Var(&profile.HeightM, "height", 1.7, "height in metres")
	fs.Float64Var(&profile.IncomeLPA, "income", 10, "annual income in lakh rupees")
	fs.BoolVar(&profile.Smoker, "smoker", false, "applicant smokes")
	fs.StringVar(&profile.City, "city", "Mumbai", "city of residence")
	fs.StringVar(&profile.Occupation, "occupation", "private_job", "occupation category")
	apiURL := fs.String("url", cfg.APIURL, "premium API base URL")

	if err = fs.Parse(args); err != nil {
		return fmt.Errorf("fs.Parse: %w", err)
	}

	record, err := features.Derive(profile)
	if err != nil {
		return fmt.Errorf("features.Derive: %w", err)
	}

	// Logs go to stderr so stdout carries only the result.
	log := slog.New(logx.NewHandler(os.Stderr, cfg.Log.Format, cfg.Log.Level))
	ctx = contextx.WithLogger(ctx, log)

	client := premiumapi.NewClient(
		*apiURL,
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(cfg.Log.FieldMaxLen),
	)

	prediction, err := client.Predict(ctx, record)
	if err != nil {
		return fmt.Errorf("client.Predict: %w", err)
	}

	printPrediction(out, prediction)

	return nil
}

func printPrediction(out io.Writer, prediction entity.Prediction) {
	fmt.Fprintf(out, "Predicted insurance premium category: %s\n", prediction.Category)
	fmt.Fprintf(out, "Confidence: %.2f%%\n", prediction.Confidence*100)
	fmt.Fprintln(out, "Class probabilities:")

	classes := lo.Keys(prediction.Probabilities)
	slices.Sort(classes)

	for _, class := range classes {
		fmt.Fprintf(out, "  %s: %.4f\n", class, prediction.Probabilities[class])
	}
}
