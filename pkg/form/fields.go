package form

import (
	"fmt"
	"strconv"
	"strings"
)

// SchemaVersion identifies the positional layout described by CanonicalOrder.
const SchemaVersion = "v1"

// FieldCount is the number of positions in a serialized payload.
const FieldCount = 34

// Well-known field names outside the binary symptom group.
const (
	FieldAgeGroup              = "ageGroup"
	FieldDuration              = "duration"
	FieldAdditionalInformation = "additionalInformation"
)

// Kind groups fields by the domain their values live in.
type Kind int

const (
	// KindDemographic fields hold an AgeGroup value.
	KindDemographic Kind = iota
	// KindBinary fields hold 0 (no) or 1 (yes).
	KindBinary
	// KindMagnitude fields hold a non-negative count with no upper bound.
	KindMagnitude
	// KindConstant fields always hold 1 and are never user-editable.
	KindConstant
)

func (k Kind) String() string {
	switch k {
	case KindDemographic:
		return "demographic"
	case KindBinary:
		return "binary"
	case KindMagnitude:
		return "magnitude"
	case KindConstant:
		return "constant"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// AgeGroup enumerates the demographic field values.
type AgeGroup int

const (
	AgeChild AgeGroup = iota
	AgeAdult
	AgeSenior
)

func (a AgeGroup) String() string {
	switch a {
	case AgeChild:
		return "Child"
	case AgeAdult:
		return "Adult"
	case AgeSenior:
		return "Senior"
	default:
		return "AgeGroup(" + strconv.Itoa(int(a)) + ")"
	}
}

// AgeGroups lists the demographic options in value order.
func AgeGroups() []AgeGroup {
	return []AgeGroup{AgeChild, AgeAdult, AgeSenior}
}

// Field describes one named input of the form.
type Field struct {
	Name    string
	Kind    Kind
	Default int
}

// Editable reports whether callers may change the field through SetField.
func (f Field) Editable() bool {
	return f.Kind != KindConstant
}

// Check reports whether value belongs to the field's domain.
func (f Field) Check(value int) error {
	switch f.Kind {
	case KindDemographic:
		if value < int(AgeChild) || value > int(AgeSenior) {
			return fmt.Errorf("must be one of 0, 1 or 2")
		}
	case KindBinary:
		if value != 0 && value != 1 {
			return fmt.Errorf("must be 0 or 1")
		}
	case KindMagnitude:
		if value < 0 {
			return fmt.Errorf("must not be negative")
		}
	case KindConstant:
		if value != 1 {
			return fmt.Errorf("must be 1")
		}
	}
	return nil
}

func binary(name string) Field {
	return Field{Name: name, Kind: KindBinary}
}

// canonicalOrder is the v1 positional schema. Position 0 is the age group and
// position 33 the constant; the backend indexes symptoms 1..33 by position.
var canonicalOrder = [FieldCount]Field{
	{Name: FieldAgeGroup, Kind: KindDemographic, Default: int(AgeAdult)},
	binary("itching"),
	binary("nodalSkinEruptions"),
	binary("shivering"),
	binary("stomachPain"),
	binary("vomiting"),
	binary("chestPain"),
	binary("lossOfAppetite"),
	binary("yellowUrine"),
	binary("restlessness"),
	binary("excessiveHunger"),
	binary("highFever"),
	binary("diarrhoea"),
	binary("redSpotsOverBody"),
	binary("breathlessness"),
	binary("darkUrine"),
	binary("skinRash"),
	binary("continuousSneezing"),
	binary("chills"),
	binary("ulcersOnTongue"),
	binary("cough"),
	binary("yellowishSkin"),
	binary("abdominalPain"),
	binary("weightLoss"),
	binary("irregularSugarLevel"),
	binary("increasedAppetite"),
	binary("headache"),
	binary("musclePain"),
	binary("runnyNose"),
	binary("fastHeartRate"),
	{Name: FieldDuration, Kind: KindMagnitude},
	binary("allergies"),
	binary("fatigue"),
	{Name: FieldAdditionalInformation, Kind: KindConstant, Default: 1},
}

var fieldIndex = func() map[string]int {
	index := make(map[string]int, FieldCount)
	for pos, field := range canonicalOrder {
		index[field.Name] = pos
	}
	return index
}()

// CanonicalOrder returns a copy of the field catalog in serialization order.
func CanonicalOrder() []Field {
	out := make([]Field, FieldCount)
	copy(out, canonicalOrder[:])
	return out
}

// Lookup resolves a field by name and returns its canonical position.
func Lookup(name string) (Field, int, bool) {
	pos, ok := fieldIndex[name]
	if !ok {
		return Field{}, -1, false
	}
	return canonicalOrder[pos], pos, true
}

// ParseValue coerces raw user input into an integer. It is the only check
// applied at the input layer; domain checks happen in Snapshot.Validate.
func ParseValue(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("form: value %q is not an integer", raw)
	}
	return value, nil
}
