// Package prompt renders the instruction sent to the model for one sample.
package prompt

import (
	"fmt"
	"strings"

	"github.com/abhisek/synthgen/internal/config"
	"github.com/abhisek/synthgen/internal/llm"
)

const separator = "####################"

// Build returns the user prompt for one (label, category, type) triple.
// The output is a pure function of its inputs.
func Build(uc config.UseCase, label, category, typeName string) string {
	var b strings.Builder

	b.WriteString("You should create synthetic data for specified labels and categories.\n")
	fmt.Fprintf(&b, "This is especially useful for %s.\n", uc.UseCase)

	b.WriteString("\n*Label Descriptions*\n")
	b.WriteString(uc.LabelDescriptions)
	b.WriteString("\n")

	b.WriteString("\n*Examples*\n")
	b.WriteString(uc.PromptExamples)
	b.WriteString("\n")

	b.WriteString("\n" + separator + "\n\n")

	b.WriteString("Generate one output for the classification below.\n")
	b.WriteString("You may use the examples I have provided as a guide, but you cannot simply modify or rewrite them.\n")
	b.WriteString("Only return the OUTPUT and REASONING.\n")
	b.WriteString("Do not return the LABEL, CATEGORY, or TYPE.\n")

	fmt.Fprintf(&b, "\nLABEL: %s\n", label)
	fmt.Fprintf(&b, "CATEGORY: %s\n", category)
	fmt.Fprintf(&b, "TYPE: %s\n", typeName)
	b.WriteString("OUTPUT:\n")
	b.WriteString("REASONING:\n")

	return b.String()
}

// System returns the system message for a use case.
func System(uc config.UseCase) string {
	return fmt.Sprintf("You are a helpful assistant designed to generate synthetic data for %s.", uc.UseCase)
}

// Messages wraps a built prompt into the two-message conversation the
// backend expects: the system message, then the prompt as the user turn.
func Messages(uc config.UseCase, prompt string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: System(uc)},
		{Role: llm.RoleUser, Content: prompt},
	}
}
