package segment_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-medrec/pkg/segment"
)

func TestSplit_PredictionSample(t *testing.T) {
	got := segment.Split("Severity Level: High\n• MedA\nNote: consult a doctor")
	want := []segment.Segment{
		{Tag: segment.TagSeverity, Text: "Severity Level: High"},
		{Tag: segment.TagListItem, Text: "• MedA"},
		{Tag: segment.TagNote, Text: "Note: consult a doctor"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestSplit_BackendLayout(t *testing.T) {
	text := "\nSeverity Level: Moderate\n\nRecommended Medicines:\nâ€¢ ORS\nâ€¢ Cetirizine (10 mg)\n\nNote: Please consult a healthcare professional before taking any medications.\n"
	got := segment.Tags(segment.Split(text))
	want := []segment.Tag{
		segment.TagDivider,
		segment.TagSeverity,
		segment.TagDivider,
		segment.TagRecommendations,
		segment.TagListItem,
		segment.TagListItem,
		segment.TagDivider,
		segment.TagNote,
		segment.TagDivider,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestClassify(t *testing.T) {
	cases := map[string]segment.Tag{
		"":                              segment.TagDivider,
		" ":                             segment.TagPlain,
		"Severity Level: Mild":          segment.TagSeverity,
		"Recommended Medicines:":        segment.TagRecommendations,
		"•Paracetamol":                  segment.TagListItem,
		"Note: rest":                    segment.TagNote,
		"No specific medicines needed.": segment.TagPlain,
		"  • indented":                  segment.TagPlain,
	}
	for line, want := range cases {
		if got := segment.Classify(line); got != want {
			t.Fatalf("Classify(%q) = %s, want %s", line, got, want)
		}
	}
}

func TestSplit_Idempotent(t *testing.T) {
	text := "Severity Level: Severe\r\n\r\n• IV Fluids\nplain line"
	first := segment.Split(text)
	second := segment.Split(text)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("segmentation not deterministic (-first +second):\n%s", diff)
	}
	if first[1].Tag != segment.TagDivider {
		t.Fatalf("expected CRLF blank line to be a divider, got %s", first[1].Tag)
	}
}

func TestSegment_Item(t *testing.T) {
	items := segment.Split("• ORS\nâ€¢ IV Fluids\nNote: x")
	if got := items[0].Item(); got != "ORS" {
		t.Fatalf("unexpected item text %q", got)
	}
	if got := items[1].Item(); got != "IV Fluids" {
		t.Fatalf("unexpected item text %q", got)
	}
	if got := items[2].Item(); got != "Note: x" {
		t.Fatalf("non-items must be returned unchanged, got %q", got)
	}
}
