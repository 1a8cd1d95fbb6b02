package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-medrec/pkg/form"
	"github.com/goliatone/go-medrec/pkg/render"
)

func TestMapIssues(t *testing.T) {
	issues := []form.Issue{
		{Field: form.FieldAgeGroup, Value: 7, Reason: "must be 0, 1 or 2"},
		{Field: "cough", Value: 3, Reason: "must be 0 or 1"},
		{Field: "cough", Value: 3, Reason: " must be 0 or 1 "},
		{Field: form.FieldAdditionalInformation, Value: 0, Reason: "must be 1"},
		{Field: "bogus", Value: 1, Reason: "unknown"},
		{Field: "headache", Value: 2, Reason: "   "},
	}

	mapped := render.MapIssues(issues)

	wantFields := map[string][]string{
		form.FieldAgeGroup: {"must be 0, 1 or 2"},
		"cough":            {"must be 0 or 1"},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	wantForm := []string{"additionalInformation: must be 1", "bogus: unknown"}
	if diff := cmp.Diff(wantForm, mapped.Form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapIssues_Empty(t *testing.T) {
	mapped := render.MapIssues(nil)
	if mapped.Fields != nil || mapped.Form != nil {
		t.Fatalf("expected empty mapping, got %+v", mapped)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged form errors mismatch (-want +got):\n%s", diff)
	}
}
