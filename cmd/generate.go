package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/synthgen/internal/app"
	"github.com/abhisek/synthgen/internal/config"
	"github.com/abhisek/synthgen/internal/confirm"
	"github.com/abhisek/synthgen/internal/generate"
	"github.com/abhisek/synthgen/internal/ui/theme"
	"github.com/abhisek/synthgen/internal/wizard"
)

type generateFlags struct {
	useCase           string
	labels            []string
	apiKey            string
	output            string
	model             string
	categories        string
	labelDescriptions string
	examples          string
	sampleSize        int
	batchSize         int
	maxNewTokens      int
	noReasoning       bool
	yes               bool
}

var genFlags generateFlags

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Configure and run a generation job",
	Long: "Configure and run a synthetic data generation job.\n\n" +
		"If --use-case, --label or the API key is missing, an interactive wizard " +
		"walks through the configuration instead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, &genFlags)
	},
}

func init() {
	registerGenerateFlags(generateCmd, &genFlags)
}

func registerGenerateFlags(cmd *cobra.Command, f *generateFlags) {
	fl := cmd.Flags()
	fl.StringVarP(&f.useCase, "use-case", "u", "", "The data generation use case")
	fl.StringArrayVarP(&f.labels, "label", "l", nil, "A label for data generation (repeatable, or comma-separated)")
	fl.StringVar(&f.apiKey, "api-key", "", "API key for the model backend (env SYNTH_API_KEY)")
	fl.StringVarP(&f.output, "output", "o", "", "Directory to write the CSV file to")
	fl.StringVarP(&f.model, "model", "m", "", "Model identifier (defaults to the first configured model)")
	fl.StringVar(&f.categories, "categories", "", "Categories and types as a JSON object of string arrays")
	fl.StringVar(&f.labelDescriptions, "label-descriptions", "", "Free-text description of the labels")
	fl.StringVar(&f.examples, "examples", "", "Free-text prompt examples")
	fl.IntVar(&f.sampleSize, "sample-size", 0, "Number of samples to generate")
	fl.IntVar(&f.batchSize, "batch-size", 0, "Samples per flushed batch")
	fl.IntVar(&f.maxNewTokens, "max-new-tokens", 0, "Maximum tokens per model response")
	fl.BoolVar(&f.noReasoning, "no-reasoning", false, "Do not write the reasoning column")
	fl.BoolVarP(&f.yes, "yes", "y", false, "Skip the confirmation prompt")
}

// interactive reports whether the wizard is needed to fill in the config.
func (f *generateFlags) interactive(apiKey string) bool {
	return f.useCase == "" || len(f.labels) == 0 || apiKey == ""
}

// buildConfig turns flags into a config on top of the option defaults.
// changed reports whether a numeric flag was set explicitly.
func (f *generateFlags) buildConfig(opts config.Options, apiKey string, changed func(string) bool) (config.GenerationConfig, error) {
	cfg := opts.NewConfig()
	cfg.UseCase.UseCase = strings.TrimSpace(f.useCase)

	labels, err := config.ParseLabels(strings.Join(f.labels, ","))
	if err != nil {
		return cfg, fmt.Errorf("--label: %w", err)
	}
	cfg.UseCase.Labels = labels

	cfg.UseCase.LabelDescriptions = f.labelDescriptions
	if !changed("label-descriptions") {
		cfg.UseCase.LabelDescriptions = config.LabelDescriptionsTemplate(labels)
	}

	rawCategories := f.categories
	if rawCategories == "" {
		rawCategories = config.DefaultCategoriesJSON
	}
	ct, err := config.ParseCategories(rawCategories)
	if err != nil {
		return cfg, fmt.Errorf("--categories: %w", err)
	}
	cfg.UseCase.CategoriesTypes = ct

	cfg.UseCase.PromptExamples = f.examples
	if !changed("examples") {
		cfg.UseCase.PromptExamples = config.DefaultPromptExamples
	}

	cfg.Model.ModelID = f.model
	if cfg.Model.ModelID == "" && len(opts.Models) > 0 {
		cfg.Model.ModelID = opts.Models[0]
	}
	cfg.Model.AuthToken = apiKey
	if changed("max-new-tokens") {
		cfg.Model.MaxNewTokens = f.maxNewTokens
	}

	if f.output != "" {
		cfg.Output.OutputDir = f.output
	}
	if changed("sample-size") {
		cfg.Output.SampleSize = f.sampleSize
	}
	if changed("batch-size") {
		cfg.Output.BatchSize = f.batchSize
	}
	if f.noReasoning {
		cfg.Output.SaveReasoning = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, f *generateFlags) error {
	env, err := openRunEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	apiKey := f.apiKey
	if apiKey == "" {
		apiKey = env.settings.APIKey
	}

	out := cmd.OutOrStdout()
	if f.interactive(apiKey) {
		return runInteractive(out, env, apiKey)
	}

	cfg, err := f.buildConfig(env.settings.Options, apiKey, cmd.Flags().Changed)
	if err != nil {
		statusFail(cmd.ErrOrStderr(), "Invalid configuration: "+err.Error())
		return exitWith(ExitInvalid)
	}

	printSummary(out, cfg)
	if !f.yes {
		proceed, err := confirm.Ask("Proceed with data generation?", true, cmd.InOrStdin(), out)
		if errors.Is(err, confirm.ErrInterrupted) {
			statusFail(out, "Operation cancelled by user.")
			return exitWith(ExitFailure)
		}
		if err != nil {
			return err
		}
		if !proceed {
			statusWarn(out, "Generation cancelled by user.")
			return nil
		}
	}

	run := env.runner()
	res, err := run(cmd.Context(), cfg, func(p generate.Progress) {
		fmt.Fprintln(out, theme.Hint.Render(progressLine(p)))
	})
	return reportGeneration(out, res, err)
}

func runInteractive(out io.Writer, env *runEnv, apiKey string) error {
	report, err := app.Run(app.Options{
		Wizard: wizard.OptionsFrom(env.settings.Options, apiKey),
		Run:    env.runner(),
		Logger: env.logger,
	})
	if err != nil {
		return err
	}

	switch report.Outcome {
	case app.OutcomeCancelled:
		statusFail(out, "Configuration cancelled. Exiting.")
		return exitWith(ExitFailure)
	default:
		return reportGeneration(out, report.Result, report.Err)
	}
}

// reportGeneration prints the final status line for a run and maps its
// error to an exit code.
func reportGeneration(out io.Writer, res *generate.Result, err error) error {
	switch {
	case err == nil && (res == nil || res.Path == ""):
		statusOK(out, "Nothing to generate: sample size is 0.")
		return nil
	case err == nil:
		statusOK(out, fmt.Sprintf("Data generation complete! %d records written to %s", res.Records, res.Path))
		return nil
	}

	var invalid *config.InvalidError
	if errors.As(err, &invalid) {
		statusFail(out, "Invalid configuration: "+err.Error())
		return exitWith(ExitInvalid)
	}
	if errors.Is(err, context.Canceled) {
		statusFail(out, "Generation interrupted.")
	} else {
		statusFail(out, "Generation failed: "+err.Error())
	}
	if res != nil && res.Path != "" && res.Records > 0 {
		statusWarn(out, fmt.Sprintf("%d records kept in %s", res.Records, res.Path))
	}
	return exitWith(ExitFailure)
}

func progressLine(p generate.Progress) string {
	return fmt.Sprintf("  batch %d/%d flushed: %d/%d records -> %s", p.Batch, p.Total, p.Records, p.Sample, p.Path)
}

func printSummary(w io.Writer, cfg config.GenerationConfig) {
	fmt.Fprintln(w, theme.Title.Render("Configuration Summary"))
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, l := range config.Summary(cfg) {
		if l.Block {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", theme.Label.Render(l.Key+":"), l.Value)
	}
	fmt.Fprintln(w)
}
