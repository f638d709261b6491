package survey

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Widget is the backend-neutral description of a form control, handed
// to clients that render the survey. Matrix questions expand to one
// option row per item, all sharing the question's scale.
type Widget struct {
	Key         string       `json:"key"`
	Control     Type         `json:"control"`
	Label       string       `json:"label"`
	Section     string       `json:"section,omitempty"`
	Required    bool         `json:"required"`
	Placeholder string       `json:"placeholder,omitempty"`
	Options     []Option     `json:"options,omitempty"`
	ScaleSpec   *ScaleSpec   `json:"scale,omitempty"`
	MatrixRows  []MatrixRow  `json:"rows,omitempty"`
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ScaleSpec struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	MinLabel string `json:"minLabel,omitempty"`
	MaxLabel string `json:"maxLabel,omitempty"`
}

type MatrixRow struct {
	Key     string   `json:"key"`
	Item    string   `json:"item"`
	Options []Option `json:"options"`
}

// ValidationError reports one unanswered or invalid required question,
// carrying both the submission key and the human prompt so the caller
// can highlight every offending field at once.
type ValidationError struct {
	Key    string `json:"key"`
	Prompt string `json:"prompt"`
}

// Renderer turns question definitions into widgets and validates
// submitted answers against them. It is stateless apart from its
// logger.
type Renderer struct {
	log *zap.Logger
}

func NewRenderer(log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{log: log}
}

// Field builds the widget for one question, dispatching on its type.
// Unknown types degrade to a plain text input; that is the documented
// fallback, not a failure.
func (r *Renderer) Field(q Question) Widget {
	w := Widget{
		Key:         q.Key(),
		Control:     q.Type,
		Label:       q.Prompt,
		Section:     q.Section,
		Required:    q.Required,
		Placeholder: q.Placeholder,
	}

	switch q.Type {
	case TypeText, TypeTextarea, TypeDate:
		// Nothing beyond the common fields.
	case TypeRadio, TypeDropdown:
		w.Options = stringOptions(q.Options)
	case TypeScale:
		w.ScaleSpec = scaleSpec(q)
		for i := q.Min; i <= q.Max; i++ {
			v := strconv.Itoa(i)
			w.Options = append(w.Options, Option{Value: v, Label: v})
		}
	case TypeMatrix:
		opts := make([]Option, 0, len(q.Scale))
		for i, v := range q.Scale {
			label := strconv.Itoa(v)
			if i < len(q.ScaleLabels) {
				label = q.ScaleLabels[i]
			}
			opts = append(opts, Option{Value: strconv.Itoa(v), Label: label})
		}
		for i, item := range q.Items {
			w.MatrixRows = append(w.MatrixRows, MatrixRow{
				Key:     q.ItemKey(i),
				Item:    item,
				Options: opts,
			})
		}
	default:
		r.log.Warn("unknown question type, rendering as text",
			zap.String("type", string(q.Type)),
			zap.Int("question", q.Number))
		w.Control = TypeText
	}

	return w
}

// Fields renders a whole catalog in order.
func (r *Renderer) Fields(cat *Catalog) []Widget {
	out := make([]Widget, 0, len(cat.Questions))
	for _, q := range cat.Questions {
		out = append(out, r.Field(q))
	}
	return out
}

// ValidateSubmission checks every required question of the catalog
// against the submission and returns the complete error list; it never
// stops at the first miss.
func (r *Renderer) ValidateSubmission(cat *Catalog, sub Submission) []ValidationError {
	var errs []ValidationError
	for _, q := range cat.Questions {
		errs = append(errs, r.ValidateAnswer(q, sub)...)
	}
	return errs
}

// ValidateAnswer checks one question against the submission. Matrix
// answers are accepted in either wire shape: a nested object keyed by
// item text under "q<n>", or flat "q<n>_<i>" keys.
func (r *Renderer) ValidateAnswer(q Question, sub Submission) []ValidationError {
	if !q.Required {
		return nil
	}

	switch q.Type {
	case TypeMatrix:
		return r.validateMatrix(q, sub)
	case TypeRadio, TypeDropdown:
		v, ok := sub.Answer(q.Key())
		s := answerString(v)
		if !ok || s == "" {
			return []ValidationError{{Key: q.Key(), Prompt: q.Prompt}}
		}
		for _, opt := range q.Options {
			if s == opt {
				return nil
			}
		}
		return []ValidationError{{Key: q.Key(), Prompt: q.Prompt}}
	case TypeScale:
		v, ok := sub.Answer(q.Key())
		if !ok {
			return []ValidationError{{Key: q.Key(), Prompt: q.Prompt}}
		}
		n, err := strconv.Atoi(strings.TrimSpace(answerString(v)))
		if err != nil || n < q.Min || n > q.Max {
			return []ValidationError{{Key: q.Key(), Prompt: q.Prompt}}
		}
		return nil
	default:
		// text, textarea, date and the unknown-type fallback: presence
		// of a non-blank string is all that is required.
		v, ok := sub.Answer(q.Key())
		if !ok || strings.TrimSpace(answerString(v)) == "" {
			return []ValidationError{{Key: q.Key(), Prompt: q.Prompt}}
		}
		return nil
	}
}

func (r *Renderer) validateMatrix(q Question, sub Submission) []ValidationError {
	nested, _ := sub.Answer(q.Key())
	byItem, _ := nested.(map[string]interface{})

	var errs []ValidationError
	for i, item := range q.Items {
		if _, ok := sub.Answer(q.ItemKey(i)); ok {
			continue
		}
		if byItem != nil {
			if v, ok := byItem[item]; ok && answerString(v) != "" {
				continue
			}
		}
		errs = append(errs, ValidationError{
			Key:    q.ItemKey(i),
			Prompt: fmt.Sprintf("%s - %s", q.Prompt, item),
		})
	}
	return errs
}

func stringOptions(values []string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: v})
	}
	return out
}

func scaleSpec(q Question) *ScaleSpec {
	s := &ScaleSpec{Min: q.Min, Max: q.Max}
	if len(q.Labels) > 0 {
		s.MinLabel = q.Labels[0]
	}
	if len(q.Labels) > 1 {
		s.MaxLabel = q.Labels[1]
	}
	return s
}
