package config

import (
	"strconv"
	"strings"
)

// RedactedToken replaces the auth token wherever a config is rendered.
const RedactedToken = "********"

// SummaryLine is one labeled entry of a rendered config.
type SummaryLine struct {
	Key   string
	Value string

	// Block is true for multi-line values rendered below the key.
	Block bool
}

// Summary renders every fragment field in display order. The auth token
// never appears in the output.
func Summary(c GenerationConfig) []SummaryLine {
	token := "Not Set"
	if c.Model.AuthToken != "" {
		token = RedactedToken
	}
	return []SummaryLine{
		{Key: "Use Case", Value: c.UseCase.UseCase},
		{Key: "Labels", Value: strings.Join(c.UseCase.Labels, ", ")},
		{Key: "Label Descriptions", Value: c.UseCase.LabelDescriptions, Block: true},
		{Key: "Categories & Types", Value: FormatCategories(c.UseCase.CategoriesTypes), Block: true},
		{Key: "Prompt Examples", Value: c.UseCase.PromptExamples, Block: true},
		{Key: "Model", Value: c.Model.ModelID},
		{Key: "Max New Tokens", Value: strconv.Itoa(c.Model.MaxNewTokens)},
		{Key: "Auth Token", Value: token},
		{Key: "Sample Size", Value: strconv.Itoa(c.Output.SampleSize)},
		{Key: "Batch Size", Value: strconv.Itoa(c.Output.BatchSize)},
		{Key: "Output Directory", Value: c.Output.OutputDir},
		{Key: "Save Reasoning", Value: strconv.FormatBool(c.Output.SaveReasoning)},
	}
}
