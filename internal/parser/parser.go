// Package parser extracts the generated text and reasoning from a model
// response. Parsing is total: every input yields a Result.
package parser

import (
	"log/slog"
	"regexp"
	"strings"
)

// Signal reports which rule recognized a response.
type Signal int

const (
	// SignalNone: canonical "OUTPUT: ... REASONING: ..." form.
	SignalNone Signal = iota
	// SignalCaseDeviation: both markers present, but not in upper case.
	SignalCaseDeviation
	// SignalMissingReasoning: an OUTPUT marker without REASONING.
	SignalMissingReasoning
	// SignalUnrecognized: no markers; the raw text is used.
	SignalUnrecognized
)

func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalCaseDeviation:
		return "case_deviation"
	case SignalMissingReasoning:
		return "missing_reasoning"
	case SignalUnrecognized:
		return "unrecognized"
	default:
		return "unknown"
	}
}

// Placeholder reasoning for degraded responses.
const (
	NoReasoning   = "No reasoning provided"
	NotRecognized = "Format not recognized"
)

// Result is the outcome of parsing one response.
type Result struct {
	Text      string
	Reasoning string
	Signal    Signal
}

type rule struct {
	pattern *regexp.Regexp
	signal  Signal
	message string
}

// rules are tried in order; the first match wins.
var rules = []rule{
	{
		pattern: regexp.MustCompile(`(?s)OUTPUT:\s*(.+?)\s*REASONING:\s*(.+)`),
		signal:  SignalNone,
	},
	{
		pattern: regexp.MustCompile(`(?is)output:\s*(.+?)\s*reasoning:\s*(.+)`),
		signal:  SignalCaseDeviation,
		message: "model used lowercase format",
	},
	{
		pattern: regexp.MustCompile(`(?s)OUTPUT:\s*(.+)`),
		signal:  SignalMissingReasoning,
		message: "no REASONING found",
	},
}

// Parser parses responses and logs format deviations.
type Parser struct {
	logger *slog.Logger
}

// New returns a Parser that logs deviations to logger. A nil logger
// discards them.
func New(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{logger: logger}
}

var defaultParser = New(nil)

// Parse parses raw with a parser that discards deviation logs.
func Parse(raw string) Result {
	return defaultParser.Parse(raw)
}

// Parse applies the rule cascade to raw.
func (p *Parser) Parse(raw string) Result {
	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		res := Result{
			Text:      strings.TrimSpace(m[1]),
			Reasoning: NoReasoning,
			Signal:    r.signal,
		}
		if len(m) > 2 {
			res.Reasoning = strings.TrimSpace(m[2])
		}
		if r.message != "" {
			p.logger.Warn(r.message, "signal", r.signal.String())
		}
		return res
	}

	p.logger.Warn("response format not recognized, using raw output",
		"signal", SignalUnrecognized.String(), "bytes", len(raw))
	return Result{
		Text:      strings.TrimSpace(raw),
		Reasoning: NotRecognized,
		Signal:    SignalUnrecognized,
	}
}
