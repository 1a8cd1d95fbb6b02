package form

import "testing"

func TestCanonicalOrder_Shape(t *testing.T) {
	order := CanonicalOrder()
	if len(order) != FieldCount {
		t.Fatalf("expected %d fields, got %d", FieldCount, len(order))
	}

	counts := map[Kind]int{}
	seen := map[string]bool{}
	for _, field := range order {
		if seen[field.Name] {
			t.Fatalf("duplicate field %q", field.Name)
		}
		seen[field.Name] = true
		counts[field.Kind]++
	}

	if counts[KindDemographic] != 1 || counts[KindMagnitude] != 1 || counts[KindConstant] != 1 {
		t.Fatalf("unexpected group sizes: %v", counts)
	}
	if counts[KindBinary] != 31 {
		t.Fatalf("expected 31 binary fields, got %d", counts[KindBinary])
	}
	if order[0].Name != FieldAgeGroup || order[30].Name != FieldDuration || order[33].Name != FieldAdditionalInformation {
		t.Fatalf("anchor positions moved: %s %s %s", order[0].Name, order[30].Name, order[33].Name)
	}
}

func TestLookup(t *testing.T) {
	field, pos, ok := Lookup("fatigue")
	if !ok || pos != 32 || field.Kind != KindBinary {
		t.Fatalf("unexpected lookup result: %+v %d %v", field, pos, ok)
	}
	if _, _, ok := Lookup("Fatigue"); ok {
		t.Fatalf("lookup must be case-sensitive")
	}
}

func TestParseValue(t *testing.T) {
	cases := map[string]struct {
		want    int
		wantErr bool
	}{
		"1":    {want: 1},
		" 14 ": {want: 14},
		"-3":   {want: -3},
		"":     {wantErr: true},
		"1.5":  {wantErr: true},
		"yes":  {wantErr: true},
	}
	for raw, tc := range cases {
		got, err := ParseValue(raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", raw)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseValue(%q) = %d, %v", raw, got, err)
		}
	}
}

func TestField_Check(t *testing.T) {
	age, _, _ := Lookup(FieldAgeGroup)
	if err := age.Check(3); err == nil {
		t.Fatalf("age group 3 should be rejected")
	}
	duration, _, _ := Lookup(FieldDuration)
	if err := duration.Check(1 << 20); err != nil {
		t.Fatalf("duration has no upper bound: %v", err)
	}
	if err := duration.Check(-1); err == nil {
		t.Fatalf("negative duration should be rejected")
	}
}
