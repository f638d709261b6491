package model

import "strings"

// TriState normalizes the yes/no answers that historically lived as
// TEXT in one schema and BOOLEAN in another. Canonical values are
// "yes", "no" and "unknown"; storage adapters translate at the edges.
type TriState string

const (
	TriYes     TriState = "yes"
	TriNo      TriState = "no"
	TriUnknown TriState = "unknown"
)

// TriStateFromAnswer interprets the answer strings seen in the wild:
// "SÍ"/"SI"/"NO" from the form, "yes"/"no", "true"/"false" and "1"/"0"
// from older boolean columns. Anything else is unknown.
func TriStateFromAnswer(v string) TriState {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "sí", "si", "yes", "true", "1":
		return TriYes
	case "no", "false", "0":
		return TriNo
	default:
		return TriUnknown
	}
}
