package config

import (
	"maps"
	"slices"
)

// UseCase holds the use case and prompt structure fragment.
type UseCase struct {
	UseCase           string
	Labels            []string
	LabelDescriptions string
	CategoriesTypes   map[string][]string
	PromptExamples    string
}

// Model holds the model selection and generation parameters.
type Model struct {
	ModelID      string
	MaxNewTokens int

	// AuthToken is required before any model invocation. Empty means absent.
	AuthToken string
}

// Output holds the output and batching fragment.
type Output struct {
	SampleSize    int
	BatchSize     int
	OutputDir     string
	SaveReasoning bool
}

// GenerationConfig is the top-level container for a generation job.
// Each wizard step writes exactly one fragment.
type GenerationConfig struct {
	UseCase UseCase
	Model   Model
	Output  Output
}

const (
	DefaultMaxNewTokens  = 256
	DefaultSampleSize    = 100
	DefaultBatchSize     = 20
	DefaultOutputDir     = "./generated_data"
	DefaultSaveReasoning = true
)

// New returns the empty config a wizard starts from. Text fields are empty;
// numeric fields carry the defaults the output settings step pre-seeds with.
func New() GenerationConfig {
	return GenerationConfig{
		Model: Model{
			MaxNewTokens: DefaultMaxNewTokens,
		},
		Output: Output{
			SampleSize:    DefaultSampleSize,
			BatchSize:     DefaultBatchSize,
			OutputDir:     DefaultOutputDir,
			SaveReasoning: DefaultSaveReasoning,
		},
	}
}

// IsValid reports whether the core fields are populated.
func (c GenerationConfig) IsValid() bool {
	return c.UseCase.UseCase != "" &&
		len(c.UseCase.Labels) > 0 &&
		len(c.UseCase.CategoriesTypes) > 0 &&
		c.Model.ModelID != "" &&
		c.Output.OutputDir != ""
}

// Clone returns a deep copy so callers never share fragment storage.
func (c GenerationConfig) Clone() GenerationConfig {
	out := c
	out.UseCase.Labels = slices.Clone(c.UseCase.Labels)
	if c.UseCase.CategoriesTypes != nil {
		out.UseCase.CategoriesTypes = make(map[string][]string, len(c.UseCase.CategoriesTypes))
		for k, v := range c.UseCase.CategoriesTypes {
			out.UseCase.CategoriesTypes[k] = slices.Clone(v)
		}
	}
	return out
}

// CategoryNames returns the category keys in sorted order.
func (u UseCase) CategoryNames() []string {
	return slices.Sorted(maps.Keys(u.CategoriesTypes))
}
