package domain

import (
	"regexp"
	"strings"
)

// sectionLabels is the canonical heading order the evaluator prompt asks
// the model to produce. Sections are located in this order; each section's
// content runs from just after its heading to just before the next located
// heading, or the end of the text.
var sectionLabels = []string{
	sectionLabelStrengths,
	sectionLabelImprovements,
	sectionLabelMissing,
	sectionLabelFrameworks,
}

var headingPatterns = buildHeadingPatterns()

func buildHeadingPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(sectionLabels))
	for _, label := range sectionLabels {
		// A heading is the label text, optionally preceded by a section
		// number and markdown emphasis/heading markers, optionally
		// followed by closing emphasis and a colon.
		patterns = append(patterns, regexp.MustCompile(
			`(?i)(?:\d+\s*[.)]\s*)?[#*_]*\s*`+regexp.QuoteMeta(label)+`\s*[*_]*:?[*_]*`,
		))
	}
	return patterns
}

var bulletLinePattern = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+(.+)$`)
var boldLinePattern = regexp.MustCompile(`^\s*\*\*([^*]{1,80})\*\*:?\s*$`)

// ParseFeedbackSections extracts the four labeled sections from raw model
// output. It is a pure function: identical input yields identical output,
// which makes it safe to re-parse stored raw text without re-calling the
// model.
//
// A section whose heading cannot be located is left nil. A section whose
// heading is found but contains no qualifying bullet lines yields an empty
// non-nil slice.
func ParseFeedbackSections(raw string) FeedbackSections {
	contents := sectionContents(raw)

	return FeedbackSections{
		Strengths:    extractBullets(contents[0]),
		Improvements: extractBullets(contents[1]),
		Missing:      extractBullets(contents[2]),
		Frameworks:   extractBullets(contents[3]),
	}
}

type sectionSpan struct {
	start, end int
	found      bool
}

// sectionContents returns the text of each canonical section, or nil where
// the heading was not located. Headings are searched left to right so a
// label word appearing inside an earlier section's body cannot shadow a
// later heading.
func sectionContents(raw string) [4]*string {
	var spans [4]sectionSpan

	pos := 0
	for i, pattern := range headingPatterns {
		loc := pattern.FindStringIndex(raw[pos:])
		if loc == nil {
			continue
		}
		spans[i] = sectionSpan{start: pos + loc[0], end: pos + loc[1], found: true}
		pos += loc[1]
	}

	var contents [4]*string
	for i, span := range spans {
		if !span.found {
			continue
		}

		end := len(raw)
		for j := i + 1; j < len(spans); j++ {
			if spans[j].found {
				end = spans[j].start
				break
			}
		}

		content := raw[span.end:end]
		contents[i] = &content
	}

	return contents
}

// extractBullets pulls the bullet lines out of one section's text.
// A line qualifies if it starts with a dash, bullet glyph, or ordinal-dot
// prefix, or is a short fully-bolded line.
func extractBullets(content *string) []string {
	if content == nil {
		return nil
	}

	bullets := []string{}
	for _, line := range strings.Split(*content, "\n") {
		var item string
		if m := bulletLinePattern.FindStringSubmatch(line); m != nil {
			item = m[1]
		} else if m := boldLinePattern.FindStringSubmatch(line); m != nil {
			item = m[1]
		} else {
			continue
		}

		item = stripEmphasis(item)
		if item != "" {
			bullets = append(bullets, item)
		}
	}

	return bullets
}

func stripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "*", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.Trim(s, "_ ")
	return strings.TrimSpace(s)
}
