package wizard

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/abhisek/synthgen/internal/config"
)

// Options are the enumerated choices and the config the wizard starts from.
type Options struct {
	UseCases []string
	Models   []string

	// Initial seeds the config. Its output settings and max_new_tokens are
	// the defaults offered by the wizard.
	Initial config.GenerationConfig
}

// OptionsFrom builds wizard options from the configured choices and
// defaults. A non-empty token is carried into the initial config so the
// token step can be pre-filled.
func OptionsFrom(o config.Options, token string) Options {
	cfg := o.NewConfig()
	cfg.Model.AuthToken = token
	return Options{
		UseCases: slices.Clone(o.UseCases),
		Models:   slices.Clone(o.Models),
		Initial:  cfg,
	}
}

// Machine is an immutable wizard state. Apply returns a new Machine; the
// receiver is never modified.
type Machine struct {
	step Step
	cfg  config.GenerationConfig
	opts Options
}

// New returns a machine at Welcome.
func New(opts Options) Machine {
	return Machine{
		step: Welcome,
		cfg:  opts.Initial.Clone(),
		opts: opts,
	}
}

// Step returns the current step.
func (m Machine) Step() Step { return m.step }

// Config returns a copy of the config built so far.
func (m Machine) Config() config.GenerationConfig { return m.cfg.Clone() }

// UseCases returns the use case choices.
func (m Machine) UseCases() []string { return slices.Clone(m.opts.UseCases) }

// Models returns the model choices.
func (m Machine) Models() []string { return slices.Clone(m.opts.Models) }

// Result returns the final config and true only once the machine reached
// Generation. A cancelled wizard produces no config.
func (m Machine) Result() (config.GenerationConfig, bool) {
	if m.step != Generation {
		return config.GenerationConfig{}, false
	}
	return m.cfg.Clone(), true
}

// LabelDescriptionsSeed returns the text the label descriptions editor
// starts with: the committed text, or one placeholder line per label.
func (m Machine) LabelDescriptionsSeed() string {
	if m.cfg.UseCase.LabelDescriptions != "" {
		return m.cfg.UseCase.LabelDescriptions
	}
	return config.LabelDescriptionsTemplate(m.cfg.UseCase.Labels)
}

// CategoriesSeed returns the text the categories editor starts with.
func (m Machine) CategoriesSeed() string {
	if len(m.cfg.UseCase.CategoriesTypes) > 0 {
		return config.FormatCategories(m.cfg.UseCase.CategoriesTypes)
	}
	return config.DefaultCategoriesJSON
}

// ExamplesSeed returns the text the examples editor starts with.
func (m Machine) ExamplesSeed() string {
	if m.cfg.UseCase.PromptExamples != "" {
		return m.cfg.UseCase.PromptExamples
	}
	return config.DefaultPromptExamples
}

// TokenSeed returns the token the token input starts with.
func (m Machine) TokenSeed() string { return m.cfg.Model.AuthToken }

// ModelSeed returns the pre-selected model.
func (m Machine) ModelSeed() string {
	if m.cfg.Model.ModelID != "" {
		return m.cfg.Model.ModelID
	}
	if len(m.opts.Models) > 0 {
		return m.opts.Models[0]
	}
	return ""
}

type transition func(m Machine, a Action) (Machine, error)

// transitions holds one entry per non-terminal step.
var transitions = map[Step]transition{
	Welcome:           welcome,
	UseCase:           selectUseCase,
	Labels:            enterLabels,
	LabelDescriptions: enterLabelDescriptions,
	Categories:        enterCategories,
	Examples:          enterExamples,
	ModelSelection:    selectModel,
	Token:             enterToken,
	OutputSettings:    enterOutputSettings,
	Summary:           summary,
}

// Apply runs the transition for the current step. On rejection it returns
// the unchanged machine with a *RejectedError.
func (m Machine) Apply(a Action) (Machine, error) {
	if m.step.Terminal() {
		return m, m.reject("", ErrTerminal)
	}
	if _, ok := a.(Interrupt); ok {
		return m.advance(Cancelled), nil
	}
	next, ok := transitions[m.step]
	if !ok {
		return m, m.reject("", fmt.Errorf("no transition for step %d", m.step))
	}
	return next(m, a)
}

func (m Machine) advance(to Step) Machine {
	m.step = to
	m.cfg = m.cfg.Clone()
	return m
}

func (m Machine) reject(field string, err error) error {
	return &RejectedError{Step: m.step, Field: field, Err: err}
}

func (m Machine) unexpected(a Action) error {
	return m.reject("", fmt.Errorf("%w: %T", ErrUnexpectedAction, a))
}

func welcome(m Machine, a Action) (Machine, error) {
	switch a.(type) {
	case Start:
		return m.advance(UseCase), nil
	case Quit:
		return m.advance(Cancelled), nil
	}
	return m, m.unexpected(a)
}

func selectUseCase(m Machine, a Action) (Machine, error) {
	act, ok := a.(SelectUseCase)
	if !ok {
		return m, m.unexpected(a)
	}
	if act.Name == "" {
		return m, m.reject("use_case", ErrNoSelection)
	}
	if !slices.Contains(m.opts.UseCases, act.Name) {
		return m, m.reject("use_case", fmt.Errorf("%q: %w", act.Name, ErrUnknownOption))
	}
	next := m.advance(Labels)
	next.cfg.UseCase.UseCase = act.Name
	return next, nil
}

func enterLabels(m Machine, a Action) (Machine, error) {
	act, ok := a.(EnterLabels)
	if !ok {
		return m, m.unexpected(a)
	}
	labels, err := config.ParseLabels(act.Raw)
	if err != nil {
		return m, m.reject("labels", err)
	}
	next := m.advance(LabelDescriptions)
	next.cfg.UseCase.Labels = labels
	return next, nil
}

func enterLabelDescriptions(m Machine, a Action) (Machine, error) {
	act, ok := a.(EnterLabelDescriptions)
	if !ok {
		return m, m.unexpected(a)
	}
	next := m.advance(Categories)
	next.cfg.UseCase.LabelDescriptions = act.Text
	return next, nil
}

func enterCategories(m Machine, a Action) (Machine, error) {
	act, ok := a.(EnterCategories)
	if !ok {
		return m, m.unexpected(a)
	}
	ct, err := config.ParseCategories(act.Raw)
	if err != nil {
		return m, m.reject("categories_types", err)
	}
	next := m.advance(Examples)
	next.cfg.UseCase.CategoriesTypes = ct
	return next, nil
}

func enterExamples(m Machine, a Action) (Machine, error) {
	act, ok := a.(EnterExamples)
	if !ok {
		return m, m.unexpected(a)
	}
	next := m.advance(ModelSelection)
	next.cfg.UseCase.PromptExamples = act.Text
	return next, nil
}

func selectModel(m Machine, a Action) (Machine, error) {
	act, ok := a.(SelectModel)
	if !ok {
		return m, m.unexpected(a)
	}
	if act.ID == "" {
		return m, m.reject("model_identifier", ErrNoSelection)
	}
	if !slices.Contains(m.opts.Models, act.ID) {
		return m, m.reject("model_identifier", fmt.Errorf("%q: %w", act.ID, ErrUnknownOption))
	}
	next := m.advance(Token)
	next.cfg.Model.ModelID = act.ID
	return next, nil
}

func enterToken(m Machine, a Action) (Machine, error) {
	act, ok := a.(EnterToken)
	if !ok {
		return m, m.unexpected(a)
	}
	token := strings.TrimSpace(act.Token)
	if token == "" {
		return m, m.reject("auth_token", ErrEmptyToken)
	}
	next := m.advance(OutputSettings)
	next.cfg.Model.AuthToken = token
	return next, nil
}

func enterOutputSettings(m Machine, a Action) (Machine, error) {
	act, ok := a.(EnterOutputSettings)
	if !ok {
		return m, m.unexpected(a)
	}

	sample, err := strconv.Atoi(strings.TrimSpace(act.SampleSize))
	if err != nil {
		return m, m.reject("sample_size", fmt.Errorf("must be an integer: %w", err))
	}
	if sample < 0 {
		return m, m.reject("sample_size", fmt.Errorf("must not be negative, got %d", sample))
	}
	batch, err := strconv.Atoi(strings.TrimSpace(act.BatchSize))
	if err != nil {
		return m, m.reject("batch_size", fmt.Errorf("must be an integer: %w", err))
	}
	if batch <= 0 {
		return m, m.reject("batch_size", fmt.Errorf("must be positive, got %d", batch))
	}
	dir := strings.TrimSpace(act.OutputDir)
	if dir == "" {
		return m, m.reject("output_directory", ErrEmptyOutputDir)
	}

	next := m.advance(Summary)
	next.cfg.Output = config.Output{
		SampleSize:    sample,
		BatchSize:     batch,
		OutputDir:     dir,
		SaveReasoning: act.SaveReasoning,
	}
	return next, nil
}

func summary(m Machine, a Action) (Machine, error) {
	switch a.(type) {
	case Generate:
		if err := m.cfg.Validate(); err != nil {
			return m, m.reject("", err)
		}
		return m.advance(Generation), nil
	case Back:
		return m.advance(OutputSettings), nil
	}
	return m, m.unexpected(a)
}
