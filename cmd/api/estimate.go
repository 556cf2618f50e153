package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"puppy-growth/internal/domain/weights"
	"puppy-growth/internal/growth"

	"github.com/spf13/cobra"
)

// estimateCmd corre el estimador sin servidor ni storage.
func estimateCmd() *cobra.Command {
	var (
		birthDate string
		samples   []string
		horizon   int
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate adult weight and growth curve from weight samples",
		Example: `  puppy-growth estimate --birth-date 2025-01-01 \
    --sample 2025-02-12=2 --sample 2025-03-12=3.4 --horizon 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd.OutOrStdout(), birthDate, samples, horizon)
		},
	}

	cmd.Flags().StringVar(&birthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&samples, "sample", nil, "Weight sample as YYYY-MM-DD=kg (repeatable)")
	cmd.Flags().IntVar(&horizon, "horizon", 12, "Weeks to forecast (0-104)")
	_ = cmd.MarkFlagRequired("birth-date")
	_ = cmd.MarkFlagRequired("sample")

	return cmd
}

func runEstimate(out io.Writer, birthDate string, rawSamples []string, horizon int) error {
	birth, err := time.Parse(time.DateOnly, strings.TrimSpace(birthDate))
	if err != nil {
		return fmt.Errorf("--birth-date must be YYYY-MM-DD: %w", err)
	}
	if horizon < 0 || horizon > weights.MaxHorizonWeeks {
		return fmt.Errorf("--horizon must be between 0 and %d", weights.MaxHorizonWeeks)
	}

	samples := make([]growth.WeightSample, 0, len(rawSamples))
	for _, raw := range rawSamples {
		s, err := parseSample(raw)
		if err != nil {
			return err
		}
		samples = append(samples, s)
	}

	est, err := growth.EstimateAdultWeight(samples, birth)
	if err != nil {
		return err
	}
	curve, err := growth.PredictGrowthCurve(samples, birth, horizon)
	if err != nil {
		return err
	}

	rep := weights.Report{
		BirthDate: birth,
		Estimate:  est,
		Curve:     curve,
		Plausible: growth.ValidateVeterinaryEstimate(est.CurrentWeight, est.EstimatedAdultWeight, est.CurrentAgeWeeks),
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(weights.ToGrowthResponse(rep))
}

func parseSample(raw string) (growth.WeightSample, error) {
	d, w, ok := strings.Cut(strings.TrimSpace(raw), "=")
	if !ok {
		return growth.WeightSample{}, fmt.Errorf("--sample %q: expected YYYY-MM-DD=kg", raw)
	}
	date, err := time.Parse(time.DateOnly, strings.TrimSpace(d))
	if err != nil {
		return growth.WeightSample{}, fmt.Errorf("--sample %q: bad date: %w", raw, err)
	}
	kg, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return growth.WeightSample{}, fmt.Errorf("--sample %q: bad weight: %w", raw, err)
	}
	return growth.WeightSample{Date: date, Weight: kg}, nil
}
