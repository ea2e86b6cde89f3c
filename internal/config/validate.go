package config

import "fmt"

// Validate checks the validity predicate plus the numeric and shape
// constraints the engine relies on. It returns *InvalidError listing
// every offending field.
func (c GenerationConfig) Validate() error {
	var fields []string

	if c.UseCase.UseCase == "" {
		fields = append(fields, "use_case is empty")
	}
	if len(c.UseCase.Labels) == 0 {
		fields = append(fields, "labels is empty")
	}
	if len(c.UseCase.CategoriesTypes) == 0 {
		fields = append(fields, "categories_types is empty")
	}
	for _, name := range c.UseCase.CategoryNames() {
		if len(c.UseCase.CategoriesTypes[name]) == 0 {
			fields = append(fields, fmt.Sprintf("category %q has no types", name))
		}
	}
	if c.Model.ModelID == "" {
		fields = append(fields, "model_identifier is empty")
	}
	if c.Model.MaxNewTokens <= 0 {
		fields = append(fields, "max_new_tokens must be positive")
	}
	if c.Output.OutputDir == "" {
		fields = append(fields, "output_directory is empty")
	}
	if c.Output.SampleSize < 0 {
		fields = append(fields, "sample_size must not be negative")
	}
	if c.Output.BatchSize <= 0 {
		fields = append(fields, "batch_size must be positive")
	}

	if len(fields) > 0 {
		return &InvalidError{Fields: fields}
	}
	return nil
}
