package survey

import (
	"fmt"
	"strconv"
)

// Type enumerates the supported question controls.
type Type string

const (
	TypeText     Type = "text"
	TypeTextarea Type = "textarea"
	TypeRadio    Type = "radio"
	TypeDropdown Type = "dropdown"
	TypeScale    Type = "scale"
	TypeDate     Type = "date"
	TypeMatrix   Type = "matrix"
)

// Question is one survey item. Number is the join key to stored
// answers: it is immutable once a catalog is in use, and catalogs only
// ever append, since renumbering breaks the interpretation of
// historical responses.
type Question struct {
	Number      int    `json:"number"`
	Section     string `json:"section,omitempty"`
	Prompt      string `json:"question"`
	Type        Type   `json:"type"`
	Required    bool   `json:"required"`
	Placeholder string `json:"placeholder,omitempty"`

	// radio / dropdown
	Options []string `json:"options,omitempty"`

	// scale
	Min    int      `json:"min,omitempty"`
	Max    int      `json:"max,omitempty"`
	Labels []string `json:"labels,omitempty"`

	// matrix
	Items       []string `json:"items,omitempty"`
	Scale       []int    `json:"scale,omitempty"`
	ScaleLabels []string `json:"scaleLabels,omitempty"`
}

// Key is the submission key for this question ("q" + number).
func (q Question) Key() string {
	return "q" + strconv.Itoa(q.Number)
}

// ItemKey is the submission key for one matrix row.
func (q Question) ItemKey(i int) string {
	return fmt.Sprintf("q%d_%d", q.Number, i)
}
