package wizard

// Action is a committed user intent. Each step accepts a fixed set.
type Action interface {
	isAction()
}

type (
	// Start leaves the welcome screen.
	Start struct{}
	// Quit leaves the welcome screen without producing a config.
	Quit struct{}
	// Interrupt cancels the wizard from any non-terminal step.
	Interrupt struct{}

	SelectUseCase          struct{ Name string }
	EnterLabels            struct{ Raw string }
	EnterLabelDescriptions struct{ Text string }
	EnterCategories        struct{ Raw string }
	EnterExamples          struct{ Text string }
	SelectModel            struct{ ID string }
	EnterToken             struct{ Token string }

	// EnterOutputSettings carries the raw numeric field text so parse
	// failures can be attributed to the field.
	EnterOutputSettings struct {
		SampleSize    string
		BatchSize     string
		OutputDir     string
		SaveReasoning bool
	}

	// Generate confirms the summary.
	Generate struct{}
	// Back returns from the summary to the output settings.
	Back struct{}
)

func (Start) isAction()                  {}
func (Quit) isAction()                   {}
func (Interrupt) isAction()              {}
func (SelectUseCase) isAction()          {}
func (EnterLabels) isAction()            {}
func (EnterLabelDescriptions) isAction() {}
func (EnterCategories) isAction()        {}
func (EnterExamples) isAction()          {}
func (SelectModel) isAction()            {}
func (EnterToken) isAction()             {}
func (EnterOutputSettings) isAction()    {}
func (Generate) isAction()               {}
func (Back) isAction()                   {}
