package genai

import (
	"fmt"
	"strings"
)

// AnalysisKind selects the focus of a code analysis request.
type AnalysisKind string

const (
	AnalysisReview       AnalysisKind = "review"
	AnalysisBugs         AnalysisKind = "bugs"
	AnalysisOptimization AnalysisKind = "optimization"
	AnalysisExplanation  AnalysisKind = "explanation"
)

// NormalizeAnalysisKind maps a caller-supplied string to a known kind.
// Unknown values fall back to a general review.
func NormalizeAnalysisKind(s string) AnalysisKind {
	switch AnalysisKind(strings.ToLower(strings.TrimSpace(s))) {
	case AnalysisBugs:
		return AnalysisBugs
	case AnalysisOptimization:
		return AnalysisOptimization
	case AnalysisExplanation:
		return AnalysisExplanation
	default:
		return AnalysisReview
	}
}

// analysisInstructions holds the per-kind prompt preamble.
var analysisInstructions = map[AnalysisKind]string{
	AnalysisReview:       "Review the following code. Point out correctness issues, style problems, and concrete improvements.",
	AnalysisBugs:         "Find bugs in the following code. For each bug, explain the failure mode and how to fix it.",
	AnalysisOptimization: "Suggest performance optimizations for the following code. Explain the expected impact of each suggestion.",
	AnalysisExplanation:  "Explain what the following code does, step by step, for a developer unfamiliar with it.",
}

// AnalysisPrompt builds the prompt for the analyzeCode tool.
func AnalysisPrompt(code, language string, kind AnalysisKind) string {
	instruction, ok := analysisInstructions[kind]
	if !ok {
		instruction = analysisInstructions[AnalysisReview]
	}

	lang := language
	if lang == "" {
		lang = "code"
	}
	return fmt.Sprintf("%s\n\n```%s\n%s\n```", instruction, lang, code)
}

// GenerationPrompt builds the prompt for the generateCode tool.
func GenerationPrompt(requirements, language, style string) string {
	var b strings.Builder
	b.WriteString("Write code that satisfies the following requirements.\n")
	if language != "" {
		fmt.Fprintf(&b, "Language: %s\n", language)
	}
	if style != "" {
		fmt.Fprintf(&b, "Style: %s\n", style)
	}
	b.WriteString("Return only the code with brief comments where they help.\n\n")
	b.WriteString("Requirements:\n")
	b.WriteString(requirements)
	return b.String()
}
