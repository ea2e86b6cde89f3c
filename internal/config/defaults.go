package config

// DefaultUseCases is the enumerated set offered by the use case step.
var DefaultUseCases = []string{
	"text classification",
	"data generation",
	"summarization",
}

// DefaultModels is the enumerated set offered by the model selection step.
// The first entry is pre-selected.
var DefaultModels = []string{
	"meta-llama/Llama-3.2-3B-Instruct",
	"google/gemma-3-1b-it",
	"HuggingFaceTB/SmolLM2-1.7B-Instruct",
}

// DefaultCategoriesJSON pre-seeds the categories editor.
const DefaultCategoriesJSON = `{
    "customer_service": [
        "complaint",
        "inquiry",
        "compliment"
    ],
    "sales": [
        "pre-sale question",
        "post-sale support"
    ]
}`

// DefaultPromptExamples pre-seeds the few-shot examples editor.
const DefaultPromptExamples = `LABEL: positive
CATEGORY: customer_service
TYPE: compliment
OUTPUT: Thank you so much for the excellent service!
REASONING: This expresses gratitude and praise, indicating positive sentiment.

LABEL: negative
CATEGORY: customer_service
TYPE: complaint
OUTPUT: I am very disappointed with the product quality.
REASONING: This expresses disappointment, indicating negative sentiment.`
