package openai

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AlthosKal/ComunnityData/ai"
)

const validationSystemPromptTemplate = `You are a citizen report validation system.
Your task is to analyze each report, detect bias, validate the category, and determine legitimacy.

VALID CATEGORIES:
%s

BIAS TO DETECT:
%s

For each report, respond ONLY with a JSON array (no additional text). Each object must have:
- id: report identifier
- bias_detected: true/false
- bias_description: description of the bias if any, or null
- validated_category: the correct validated category
- legitimate: true if the report is genuine, false if it is spam or propaganda

Respond ONLY with the JSON array, no additional explanations. Format:
[{"id":"...", "bias_detected":true, "bias_description":"...", "validated_category":"Health", "legitimate":true}, ...]`

// buildValidationSystemPrompt creates the system prompt with the category
// vocabulary and bias taxonomy embedded.
func buildValidationSystemPrompt() string {
	categories := make([]string, 0, len(ai.ValidCategories))
	for name := range ai.ValidCategories {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	var cats strings.Builder
	for _, name := range categories {
		fmt.Fprintf(&cats, "- %s: %s\n", name, ai.ValidCategories[name])
	}

	var biases strings.Builder
	for _, b := range ai.BiasTaxonomy {
		fmt.Fprintf(&biases, "- %s\n", b)
	}

	return fmt.Sprintf(validationSystemPromptTemplate,
		strings.TrimRight(cats.String(), "\n"),
		strings.TrimRight(biases.String(), "\n"))
}

// buildValidationUserPrompt lists the reports to analyze, one numbered block
// per report.
func buildValidationUserPrompt(inputs []ai.ValidationInput) string {
	var b strings.Builder
	b.WriteString("REPORTS TO ANALYZE:\n")
	for i, in := range inputs {
		fmt.Fprintf(&b, "%d. ID: %s\n", i+1, in.Id)
		fmt.Fprintf(&b, "   Comment: %s\n", in.Comment)
		category := in.SuggestedCategory
		if category == "" {
			category = "Not specified"
		}
		fmt.Fprintf(&b, "   Suggested category: %s\n", category)
		fmt.Fprintf(&b, "   City: %s\n", in.City)
		b.WriteString("\n")
	}
	return b.String()
}
