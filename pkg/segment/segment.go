// Package segment classifies the lines of a prediction text so renderers can
// map each one to markup. Classification is a pure function of the line.
package segment

import "strings"

// Tag is the semantic class of a line.
type Tag string

const (
	TagSeverity        Tag = "severity-header"
	TagRecommendations Tag = "recommendations-header"
	TagListItem        Tag = "list-item"
	TagNote            Tag = "note"
	TagDivider         Tag = "divider"
	TagPlain           Tag = "plain"
)

const (
	severityPrefix        = "Severity Level:"
	recommendationsPrefix = "Recommended Medicines:"
	notePrefix            = "Note:"
)

// bulletMarkers lists the list item prefixes. The second entry is the UTF-8
// bullet decoded as Windows-1252, which the prediction backend emits.
var bulletMarkers = []string{"•", "â€¢"}

// Segment is one classified line.
type Segment struct {
	Tag  Tag    `json:"tag"`
	Text string `json:"text"`
}

// Classify returns the tag for a single line.
func Classify(line string) Tag {
	switch {
	case line == "":
		return TagDivider
	case strings.HasPrefix(line, severityPrefix):
		return TagSeverity
	case strings.HasPrefix(line, recommendationsPrefix):
		return TagRecommendations
	case hasBullet(line):
		return TagListItem
	case strings.HasPrefix(line, notePrefix):
		return TagNote
	default:
		return TagPlain
	}
}

// Split breaks text on line boundaries and classifies each line.
func Split(text string) []Segment {
	lines := strings.Split(text, "\n")
	out := make([]Segment, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		out = append(out, Segment{Tag: Classify(line), Text: line})
	}
	return out
}

// Tags extracts the tag sequence of segments.
func Tags(segments []Segment) []Tag {
	out := make([]Tag, len(segments))
	for i, seg := range segments {
		out[i] = seg.Tag
	}
	return out
}

// Item returns a list item's text without its marker. Other segments are
// returned unchanged.
func (s Segment) Item() string {
	if s.Tag != TagListItem {
		return s.Text
	}
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(s.Text, marker) {
			return strings.TrimSpace(strings.TrimPrefix(s.Text, marker))
		}
	}
	return s.Text
}

func hasBullet(line string) bool {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}
