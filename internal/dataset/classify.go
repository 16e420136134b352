package dataset

import "strings"

// StorageType is the derived Ephemeral/Persisted label of a row.
type StorageType string

const (
	Ephemeral StorageType = "Ephemeral"
	Persisted StorageType = "Persisted"
)

// StorageTypes lists every storage type in label order.
var StorageTypes = []StorageType{Ephemeral, Persisted}

// ephemeralMarker identifies compute-only storage. Matching is a
// case-sensitive substring test.
const ephemeralMarker = "AWS Lambda"

// Classify returns Ephemeral when any technology mentions AWS Lambda.
// An empty slice (no storage technology columns) classifies as Persisted.
func Classify(techs []string) StorageType {
	for _, t := range techs {
		if strings.Contains(t, ephemeralMarker) {
			return Ephemeral
		}
	}
	return Persisted
}

// Value is the lower-case form used as a facet option value.
func (t StorageType) Value() string { return strings.ToLower(string(t)) }

// ParseStorageType matches a facet value case-insensitively.
func ParseStorageType(v string) (StorageType, bool) {
	for _, t := range StorageTypes {
		if strings.EqualFold(string(t), v) {
			return t, true
		}
	}
	return "", false
}
