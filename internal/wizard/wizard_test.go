package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/synthgen/internal/config"
)

func testOptions() Options {
	return OptionsFrom(config.DefaultOptions(), "")
}

func apply(t *testing.T, m Machine, actions ...Action) Machine {
	t.Helper()
	for _, a := range actions {
		var err error
		m, err = m.Apply(a)
		require.NoError(t, err, "action %T at %s", a, m.Step())
	}
	return m
}

func happyPath() []Action {
	return []Action{
		Start{},
		SelectUseCase{Name: "text classification"},
		EnterLabels{Raw: "positive, negative"},
		EnterLabelDescriptions{Text: "positive: good\nnegative: bad"},
		EnterCategories{Raw: `{"reviews": ["short", "long"]}`},
		EnterExamples{Text: "LABEL: positive\nTEXT: nice"},
		SelectModel{ID: "google/gemma-3-1b-it"},
		EnterToken{Token: "  hf_secret  "},
		EnterOutputSettings{SampleSize: "10", BatchSize: "4", OutputDir: "./out", SaveReasoning: true},
		Generate{},
	}
}

func TestHappyPath(t *testing.T) {
	m := New(testOptions())
	assert.Equal(t, Welcome, m.Step())

	want := []Step{UseCase, Labels, LabelDescriptions, Categories, Examples, ModelSelection, Token, OutputSettings, Summary, Generation}
	for i, a := range happyPath() {
		var err error
		m, err = m.Apply(a)
		require.NoError(t, err)
		assert.Equal(t, want[i], m.Step())
	}

	cfg, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, "text classification", cfg.UseCase.UseCase)
	assert.Equal(t, []string{"positive", "negative"}, cfg.UseCase.Labels)
	assert.Equal(t, map[string][]string{"reviews": {"short", "long"}}, cfg.UseCase.CategoriesTypes)
	assert.Equal(t, "google/gemma-3-1b-it", cfg.Model.ModelID)
	assert.Equal(t, "hf_secret", cfg.Model.AuthToken)
	assert.Equal(t, config.DefaultMaxNewTokens, cfg.Model.MaxNewTokens)
	assert.Equal(t, config.Output{SampleSize: 10, BatchSize: 4, OutputDir: "./out", SaveReasoning: true}, cfg.Output)
}

func TestWelcomeQuit(t *testing.T) {
	m := apply(t, New(testOptions()), Quit{})
	assert.Equal(t, Cancelled, m.Step())

	_, ok := m.Result()
	assert.False(t, ok)
}

func TestInterruptFromEveryStep(t *testing.T) {
	actions := happyPath()
	m := New(testOptions())
	for _, a := range actions[:len(actions)-1] {
		got, err := m.Apply(Interrupt{})
		require.NoError(t, err)
		assert.Equal(t, Cancelled, got.Step(), "interrupt at %s", m.Step())

		m = apply(t, m, a)
	}
}

func TestTerminalRejectsEverything(t *testing.T) {
	for _, m := range []Machine{
		apply(t, New(testOptions()), happyPath()...),
		apply(t, New(testOptions()), Quit{}),
	} {
		for _, a := range []Action{Start{}, Interrupt{}, Back{}, Generate{}} {
			got, err := m.Apply(a)
			assert.ErrorIs(t, err, ErrTerminal)
			assert.Equal(t, m.Step(), got.Step())
		}
	}
}

func TestRejections(t *testing.T) {
	tests := []struct {
		name   string
		prefix int
		action Action
		field  string
		target error
	}{
		{"empty use case", 1, SelectUseCase{}, "use_case", ErrNoSelection},
		{"unknown use case", 1, SelectUseCase{Name: "poetry"}, "use_case", ErrUnknownOption},
		{"blank labels", 2, EnterLabels{Raw: " , ,"}, "labels", config.ErrNoLabels},
		{"bad categories", 4, EnterCategories{Raw: `{"a": "b"}`}, "categories_types", nil},
		{"empty model", 6, SelectModel{}, "model_identifier", ErrNoSelection},
		{"unknown model", 6, SelectModel{ID: "gpt-2"}, "model_identifier", ErrUnknownOption},
		{"blank token", 7, EnterToken{Token: "   "}, "auth_token", ErrEmptyToken},
		{"non-numeric sample", 8, EnterOutputSettings{SampleSize: "ten", BatchSize: "2", OutputDir: "o"}, "sample_size", nil},
		{"negative sample", 8, EnterOutputSettings{SampleSize: "-1", BatchSize: "2", OutputDir: "o"}, "sample_size", nil},
		{"zero batch", 8, EnterOutputSettings{SampleSize: "5", BatchSize: "0", OutputDir: "o"}, "batch_size", nil},
		{"empty dir", 8, EnterOutputSettings{SampleSize: "5", BatchSize: "2", OutputDir: " "}, "output_directory", ErrEmptyOutputDir},
		{"wrong action", 3, EnterLabels{Raw: "a"}, "", ErrUnexpectedAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := apply(t, New(testOptions()), happyPath()[:tt.prefix]...)
			before := m.Config()

			got, err := m.Apply(tt.action)

			var rejected *RejectedError
			require.ErrorAs(t, err, &rejected)
			assert.Equal(t, m.Step(), rejected.Step)
			assert.Equal(t, tt.field, rejected.Field)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			assert.Equal(t, m.Step(), got.Step())
			assert.Equal(t, before, got.Config())
		})
	}
}

func TestZeroSampleAccepted(t *testing.T) {
	actions := happyPath()
	actions[8] = EnterOutputSettings{SampleSize: "0", BatchSize: "5", OutputDir: "out"}
	m := apply(t, New(testOptions()), actions...)

	cfg, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, 0, cfg.Output.SampleSize)
}

func TestSummaryBack(t *testing.T) {
	actions := happyPath()
	m := apply(t, New(testOptions()), actions[:9]...)
	require.Equal(t, Summary, m.Step())

	m = apply(t, m, Back{}, EnterOutputSettings{SampleSize: "3", BatchSize: "1", OutputDir: "again"}, Generate{})
	cfg, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, "again", cfg.Output.OutputDir)
	assert.Equal(t, 3, cfg.Output.SampleSize)
}

func TestSummaryGenerateRequiresValidConfig(t *testing.T) {
	opts := testOptions()
	opts.Initial.Model.MaxNewTokens = 0
	m := apply(t, New(opts), happyPath()[:9]...)

	_, err := m.Apply(Generate{})
	var invalid *config.InvalidError
	assert.True(t, errors.As(err, &invalid))
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	m := apply(t, New(testOptions()), happyPath()[:3]...)
	next := apply(t, m, EnterLabelDescriptions{Text: "x"})

	assert.Equal(t, LabelDescriptions, m.Step())
	assert.Empty(t, m.Config().UseCase.LabelDescriptions)
	assert.Equal(t, "x", next.Config().UseCase.LabelDescriptions)

	cfg := next.Config()
	cfg.UseCase.Labels[0] = "mutated"
	assert.Equal(t, "positive", next.Config().UseCase.Labels[0])
}

func TestSeeds(t *testing.T) {
	m := apply(t, New(OptionsFrom(config.DefaultOptions(), "tok")), happyPath()[:3]...)
	assert.Equal(t, config.LabelDescriptionsTemplate([]string{"positive", "negative"}), m.LabelDescriptionsSeed())
	assert.Equal(t, config.DefaultCategoriesJSON, m.CategoriesSeed())
	assert.Equal(t, config.DefaultPromptExamples, m.ExamplesSeed())
	assert.Equal(t, config.DefaultModels[0], m.ModelSeed())
	assert.Equal(t, "tok", m.TokenSeed())

	m = apply(t, m, EnterLabelDescriptions{Text: "kept"})
	assert.Equal(t, "kept", m.LabelDescriptionsSeed())
}

func TestStepNumbers(t *testing.T) {
	assert.Equal(t, 0, Welcome.Number())
	assert.Equal(t, 1, UseCase.Number())
	assert.Equal(t, StepCount, Summary.Number())
	assert.Equal(t, 0, Generation.Number())
	assert.True(t, Cancelled.Terminal())
	assert.False(t, Summary.Terminal())
}
