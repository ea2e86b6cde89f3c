// Package wizard is the pure state machine behind the interactive setup
// flow. It owns the GenerationConfig under construction; screens only
// submit actions and render what the machine exposes.
package wizard

// Step identifies a wizard state.
type Step int

const (
	Welcome Step = iota
	UseCase
	Labels
	LabelDescriptions
	Categories
	Examples
	ModelSelection
	Token
	OutputSettings
	Summary
	Generation // terminal success
	Cancelled  // terminal failure
)

// StepCount is the number of numbered input steps, UseCase through Summary.
const StepCount = 9

var stepNames = map[Step]string{
	Welcome:           "Welcome",
	UseCase:           "Use Case",
	Labels:            "Labels",
	LabelDescriptions: "Label Descriptions",
	Categories:        "Categories",
	Examples:          "Prompt Examples",
	ModelSelection:    "Model Selection",
	Token:             "Access Token",
	OutputSettings:    "Output Settings",
	Summary:           "Summary",
	Generation:        "Generation",
	Cancelled:         "Cancelled",
}

func (s Step) String() string {
	if n, ok := stepNames[s]; ok {
		return n
	}
	return "Unknown"
}

// Terminal reports whether no further transitions are possible.
func (s Step) Terminal() bool {
	return s == Generation || s == Cancelled
}

// Number returns the 1-based position for "Step n of StepCount" headers,
// or 0 for steps outside the numbered range.
func (s Step) Number() int {
	if s >= UseCase && s <= Summary {
		return int(s)
	}
	return 0
}
