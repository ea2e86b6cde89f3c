package app

import (
	"strings"

	"github.com/abhisek/synthgen/internal/screen"
	"github.com/abhisek/synthgen/internal/screens/choice"
	"github.com/abhisek/synthgen/internal/screens/editor"
	"github.com/abhisek/synthgen/internal/screens/generation"
	"github.com/abhisek/synthgen/internal/screens/input"
	"github.com/abhisek/synthgen/internal/screens/output"
	"github.com/abhisek/synthgen/internal/screens/review"
	"github.com/abhisek/synthgen/internal/screens/welcome"
	"github.com/abhisek/synthgen/internal/wizard"
)

// screenFor builds the screen for the machine's current step, seeded from
// the config committed so far. It returns nil for Cancelled.
func screenFor(m wizard.Machine, run generation.Runner) screen.Screen {
	cfg := m.Config()

	switch m.Step() {
	case wizard.Welcome:
		return welcome.New()

	case wizard.UseCase:
		return choice.New(m.Step().String(), "What kind of data do you want to generate?",
			m.UseCases(), cfg.UseCase.UseCase,
			func(name string) wizard.Action { return wizard.SelectUseCase{Name: name} })

	case wizard.Labels:
		return input.New(input.Config{
			Title:       m.Step().String(),
			Prompt:      "Which labels should the samples carry?",
			Help:        "Comma-separated, e.g. positive, negative, neutral",
			Placeholder: "positive, negative",
			Value:       strings.Join(cfg.UseCase.Labels, ", "),
			Build:       func(raw string) wizard.Action { return wizard.EnterLabels{Raw: raw} },
		})

	case wizard.LabelDescriptions:
		return editor.New(editor.Config{
			Title:  m.Step().String(),
			Prompt: "Describe what each label means",
			Help:   "Free text, inserted into every prompt",
			Value:  m.LabelDescriptionsSeed(),
			Build:  func(text string) wizard.Action { return wizard.EnterLabelDescriptions{Text: text} },
		})

	case wizard.Categories:
		return editor.New(editor.Config{
			Title:  m.Step().String(),
			Prompt: "Categories and their types",
			Help:   `A JSON object mapping each category to a list of types, e.g. {"reviews": ["short", "long"]}`,
			Value:  m.CategoriesSeed(),
			Build:  func(raw string) wizard.Action { return wizard.EnterCategories{Raw: raw} },
		})

	case wizard.Examples:
		return editor.New(editor.Config{
			Title:  m.Step().String(),
			Prompt: "Example samples shown to the model",
			Help:   "Free text, inserted into every prompt",
			Value:  m.ExamplesSeed(),
			Build:  func(text string) wizard.Action { return wizard.EnterExamples{Text: text} },
		})

	case wizard.ModelSelection:
		return choice.New(m.Step().String(), "Which model should generate the samples?",
			m.Models(), m.ModelSeed(),
			func(id string) wizard.Action { return wizard.SelectModel{ID: id} })

	case wizard.Token:
		return input.New(input.Config{
			Title:       m.Step().String(),
			Prompt:      "Access token for the model backend",
			Help:        "Never stored or displayed",
			Placeholder: "hf_...",
			Value:       m.TokenSeed(),
			Masked:      true,
			Build:       func(tok string) wizard.Action { return wizard.EnterToken{Token: tok} },
		})

	case wizard.OutputSettings:
		return output.New(cfg.Output)

	case wizard.Summary:
		return review.New(cfg)

	case wizard.Generation:
		return generation.New(cfg, run)
	}
	return nil
}
