package domain

import "fmt"

// The four section labels form the contract between the evaluator prompt
// and ParseFeedbackSections. They are defined here, next to the parser,
// so the prompt and the parsing stay versioned together.
const (
	sectionLabelStrengths    = "Strengths"
	sectionLabelImprovements = "Areas for Improvement"
	sectionLabelMissing      = "Missing Considerations"
	sectionLabelFrameworks   = "Framework Suggestions"
)

// BuildFeedbackPrompt constructs the evaluator prompt for one answer.
// The model is asked for the four labeled sections in a fixed order;
// anything else it emits is ignored by the parser.
func BuildFeedbackPrompt(caseTitle, caseDescription, answerText string) string {
	return fmt.Sprintf(`You are an experienced MBA case interview coach evaluating a candidate's written solution.

Case: %s

Case description:
%s

Candidate's answer:
%s

Evaluate the answer and respond with exactly these four sections, in this order, each as a heading followed by bullet points:

1. %s
2. %s
3. %s
4. %s

Keep each bullet to one or two sentences. Do not add any other sections.`,
		caseTitle,
		caseDescription,
		answerText,
		sectionLabelStrengths,
		sectionLabelImprovements,
		sectionLabelMissing,
		sectionLabelFrameworks,
	)
}
