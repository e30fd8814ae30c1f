package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yourusername/matchtips/internal/form"
	"github.com/yourusername/matchtips/internal/logger"
	"github.com/yourusername/matchtips/internal/metrics"
	"github.com/yourusername/matchtips/internal/render"
	"github.com/yourusername/matchtips/internal/scoring"
	"github.com/yourusername/matchtips/internal/service"
)

var (
	scoreInput   string
	scoreExample bool
	scoreVariant string
	scoreTopN    int
	scoreFields  map[string]string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInput, "input", "i", "", "YAML form file with match statistics")
	scoreCmd.Flags().BoolVar(&scoreExample, "example", false, "Start from the demo match")
	scoreCmd.Flags().StringVar(&scoreVariant, "variant", "", "Override the scoring variant (basic, advanced)")
	scoreCmd.Flags().IntVar(&scoreTopN, "top", 0, "Override how many tips are shown")
	scoreCmd.Flags().StringToStringVar(&scoreFields, "set", nil, "Set form fields, e.g. --set homeGoalsFor=1.4,oddsHome=2.1")
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Rank tips for a match",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := buildForm()
		if err != nil {
			return err
		}

		engine, err := buildEngine()
		if err != nil {
			return err
		}

		svc := service.NewTipService(engine, appLogger, cfg.Metrics.Enabled)
		report, err := svc.Generate(cmd.Context(), f)
		if err != nil {
			return fmt.Errorf("failed to generate tips: %w", err)
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return writeJSON(out, report)
		}
		return printReport(out, report)
	},
}

func buildForm() (form.Form, error) {
	f := form.New()
	if scoreExample {
		f.FillExample()
	}
	if scoreInput != "" {
		loaded, err := form.Load(scoreInput)
		if err != nil {
			return nil, err
		}
		for name, value := range loaded {
			f.Set(name, value)
		}
	}
	for name, value := range scoreFields {
		if !form.IsKnown(name) {
			return nil, fmt.Errorf("unknown form field %q", name)
		}
		f.Set(name, value)
	}
	applyConfiguredWeights(f)
	return f, nil
}

func buildEngine() (*scoring.Engine, error) {
	audit := logger.NewAuditLogger(appLogger)
	variantName := cfg.Scoring.Variant
	if scoreVariant != "" && scoreVariant != variantName {
		audit.LogSettingOverride("scoring.variant", variantName, scoreVariant)
		variantName = scoreVariant
	}
	variant, err := scoring.ParseVariant(variantName)
	if err != nil {
		return nil, err
	}
	policy, err := scoring.ParseChartPolicy(cfg.Scoring.ChartPolicy)
	if err != nil {
		return nil, err
	}
	topN := cfg.Scoring.TopN
	if scoreTopN > 0 && scoreTopN != topN {
		audit.LogSettingOverride("scoring.top_n", topN, scoreTopN)
		topN = scoreTopN
	}
	return scoring.NewEngine(scoring.Options{
		Variant:     variant,
		TopN:        topN,
		ChartPolicy: policy,
	}), nil
}

// applyConfiguredWeights fills weights the form left empty from configuration
func applyConfiguredWeights(f form.Form) {
	if f.Get(form.WeightAttack) == "" {
		f.Set(form.WeightAttack, fmt.Sprint(cfg.Scoring.WeightAttack))
	}
	if f.Get(form.WeightDefense) == "" {
		f.Set(form.WeightDefense, fmt.Sprint(cfg.Scoring.WeightDefense))
	}
}

func printReport(out io.Writer, report *service.Report) error {
	result := report.Result
	d := result.Diagnostics
	fmt.Fprintf(out, "%s vs %s (%s)\n\n", d.HomeName, d.AwayName, result.Variant)

	for i, tip := range result.Top {
		fmt.Fprintf(out, "%d. %s - confidence %d%%\n", i+1, tip.Label, tip.Score)
		if cfg.Render.ShowExplanations {
			fmt.Fprintf(out, "   %s\n", report.Explanations[i])
		}
	}

	if cfg.Render.ShowSummary {
		fmt.Fprintf(out, "\n%s", report.Summary)
	}

	if cfg.Render.ShowChart {
		fmt.Fprintln(out)
		session := render.NewSession(render.NewRenderer(out, cfg.Render.Width))
		if _, err := session.Show("Confidence (%)", result.Chart); err != nil {
			return err
		}
		if cfg.Metrics.Enabled {
			metrics.RecordChartRendered()
		}
		if err := session.Clear(); err != nil {
			return err
		}
	}

	if len(report.InvalidFields) > 0 {
		fmt.Fprintf(out, "\nIgnored unreadable fields: %v\n", report.InvalidFields)
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(out, "Warning: %s\n", w)
	}
	return nil
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
