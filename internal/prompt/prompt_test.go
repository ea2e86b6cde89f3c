package prompt

import (
	"strings"
	"testing"

	"github.com/abhisek/synthgen/internal/config"
	"github.com/abhisek/synthgen/internal/llm"
)

func testUseCase() config.UseCase {
	return config.UseCase{
		UseCase:           "Sentiment Analysis",
		Labels:            []string{"positive", "negative"},
		LabelDescriptions: "positive: happy\nnegative: unhappy",
		CategoriesTypes:   map[string][]string{"retail": {"review"}},
		PromptExamples:    "LABEL: positive\nOUTPUT: Great!\nREASONING: praise",
	}
}

func TestBuild_EmbedsInputs(t *testing.T) {
	p := Build(testUseCase(), "negative", "retail", "review")

	for _, want := range []string{
		"This is especially useful for Sentiment Analysis.",
		"*Label Descriptions*\npositive: happy\nnegative: unhappy\n",
		"*Examples*\nLABEL: positive\nOUTPUT: Great!\nREASONING: praise\n",
		"LABEL: negative\nCATEGORY: retail\nTYPE: review\nOUTPUT:\nREASONING:\n",
		"Only return the OUTPUT and REASONING.",
		"Do not return the LABEL, CATEGORY, or TYPE.",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q\n---\n%s", want, p)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	uc := testUseCase()
	a := Build(uc, "positive", "retail", "review")
	b := Build(uc, "positive", "retail", "review")
	if a != b {
		t.Fatal("expected identical prompts for identical inputs")
	}
	if c := Build(uc, "negative", "retail", "review"); c == a {
		t.Fatal("expected label to change the prompt")
	}
}

func TestBuild_EmptyFragments(t *testing.T) {
	uc := testUseCase()
	uc.LabelDescriptions = ""
	uc.PromptExamples = ""

	p := Build(uc, "positive", "retail", "review")
	if !strings.Contains(p, "*Label Descriptions*\n\n") {
		t.Error("expected empty label descriptions block")
	}
	if !strings.Contains(p, "*Examples*\n\n") {
		t.Error("expected empty examples block")
	}
}

func TestMessages(t *testing.T) {
	uc := testUseCase()
	msgs := Messages(uc, "the prompt")

	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != llm.RoleSystem {
		t.Errorf("first role = %q, want system", msgs[0].Role)
	}
	if msgs[0].Content != "You are a helpful assistant designed to generate synthetic data for Sentiment Analysis." {
		t.Errorf("system = %q", msgs[0].Content)
	}
	if msgs[1].Role != llm.RoleUser || msgs[1].Content != "the prompt" {
		t.Errorf("user message = %+v", msgs[1])
	}
}
