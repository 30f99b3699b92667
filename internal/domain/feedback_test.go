package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackSections_JSONRoundTripKeepsAbsentAndEmptyDistinct(t *testing.T) {
	sections := FeedbackSections{
		Strengths: []string{"Clear market sizing approach"},
		Missing:   []string{},
	}

	encoded, err := json.Marshal(sections)
	require.NoError(t, err)

	var decoded FeedbackSections
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	assert.Equal(t, sections.Strengths, decoded.Strengths)

	// A heading found with no bullets stays an empty list, and a heading
	// never located stays absent.
	require.NotNil(t, decoded.Missing)
	assert.Empty(t, decoded.Missing)
	assert.Nil(t, decoded.Improvements)
	assert.Nil(t, decoded.Frameworks)
}

func TestFeedbackSections_JSONEncodesAbsentAsNullAndEmptyAsList(t *testing.T) {
	encoded, err := json.Marshal(FeedbackSections{Missing: []string{}})
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &raw))

	assert.Equal(t, "[]", string(raw["missing_considerations"]))
	assert.Equal(t, "null", string(raw["strengths"]))
	assert.Equal(t, "null", string(raw["improvements"]))
	assert.Equal(t, "null", string(raw["framework_suggestions"]))
}
