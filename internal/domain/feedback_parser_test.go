package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFeedbackSections(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		expected FeedbackSections
	}{
		{
			name: "all_sections_in_order",
			raw: "1. Strengths\n" +
				"- Clear structure\n" +
				"- Good math\n" +
				"2. Areas for Improvement\n" +
				"1. Quantify the impact\n" +
				"3. Missing Considerations\n" +
				"- Competitor response\n" +
				"4. Framework Suggestions\n" +
				"- Profitability tree\n",
			expected: FeedbackSections{
				Strengths:    []string{"Clear structure", "Good math"},
				Improvements: []string{"Quantify the impact"},
				Missing:      []string{"Competitor response"},
				Frameworks:   []string{"Profitability tree"},
			},
		},
		{
			name: "uppercase_headings_with_mixed_markers",
			raw: "STRENGTHS\n" +
				"- A\n" +
				"- B\n" +
				"AREAS FOR IMPROVEMENT\n" +
				"1. C\n",
			expected: FeedbackSections{
				Strengths:    []string{"A", "B"},
				Improvements: []string{"C"},
			},
		},
		{
			name: "bolded_headings_and_bullets",
			raw: "**Strengths:**\n" +
				"* **Solid hypothesis** driven approach\n" +
				"**Areas for Improvement:**\n" +
				"**Be more concise**\n" +
				"**Missing Considerations:**\n" +
				"• Regulatory risk\n" +
				"**Framework Suggestions:**\n" +
				"- Try the *4 Ps*\n",
			expected: FeedbackSections{
				Strengths:    []string{"Solid hypothesis driven approach"},
				Improvements: []string{"Be more concise"},
				Missing:      []string{"Regulatory risk"},
				Frameworks:   []string{"Try the 4 Ps"},
			},
		},
		{
			name: "heading_present_but_no_bullets_yields_empty_list",
			raw: "Strengths\n" +
				"Nothing stood out here.\n" +
				"Areas for Improvement\n" +
				"- Practice mental math\n",
			expected: FeedbackSections{
				Strengths:    []string{},
				Improvements: []string{"Practice mental math"},
			},
		},
		{
			name: "missing_headings_are_absent_not_empty",
			raw: "Strengths\n" +
				"- Only section the model produced\n",
			expected: FeedbackSections{
				Strengths: []string{"Only section the model produced"},
			},
		},
		{
			name:     "empty_input",
			raw:      "",
			expected: FeedbackSections{},
		},
		{
			name: "preamble_before_first_heading_is_ignored",
			raw: "Here is my evaluation of your answer.\n\n" +
				"Strengths:\n" +
				"- Good segmentation\n" +
				"Areas for Improvement:\n" +
				"- Structure your opening\n" +
				"Missing Considerations:\n" +
				"Framework Suggestions:\n" +
				"- MECE issue tree\n",
			expected: FeedbackSections{
				Strengths:    []string{"Good segmentation"},
				Improvements: []string{"Structure your opening"},
				Missing:      []string{},
				Frameworks:   []string{"MECE issue tree"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := ParseFeedbackSections(tc.raw)

			assert.Equal(t, tc.expected.Strengths, result.Strengths)
			assert.Equal(t, tc.expected.Improvements, result.Improvements)
			assert.Equal(t, tc.expected.Missing, result.Missing)
			assert.Equal(t, tc.expected.Frameworks, result.Frameworks)
		})
	}
}

func TestParseFeedbackSections_Deterministic(t *testing.T) {
	raw := "Strengths\n- A\n- B\nAreas for Improvement\n1. C\n" +
		"Missing Considerations\n- D\nFramework Suggestions\n- E\n"

	first := ParseFeedbackSections(raw)
	second := ParseFeedbackSections(raw)

	assert.Equal(t, first, second)
}

func TestParseFeedbackSections_RoundTripsPromptContract(t *testing.T) {
	// The prompt instructs the model to use exactly the labels the parser
	// searches for; a model that follows the instructions verbatim must
	// parse cleanly.
	prompt := BuildFeedbackPrompt("Coffee chain expansion", "desc", "answer")
	for _, label := range sectionLabels {
		assert.Contains(t, prompt, label)
	}
}
