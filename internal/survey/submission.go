package survey

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Submission is a decoded raw form submission: question keys
// ("q" + number, matrix rows "q" + number + "_" + item index) plus the
// handful of auxiliary identity keys the form sends alongside
// ("full_name", "identification", "area", "userId", ...).
type Submission map[string]interface{}

// ParseSubmission decodes the wire payload. A payload that does not
// decode yields an empty submission; the caller still keeps the raw
// bytes verbatim.
func ParseSubmission(raw json.RawMessage) Submission {
	sub := Submission{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &sub)
	}
	return sub
}

// Answer returns the value for a key, treating empty strings as absent.
func (s Submission) Answer(key string) (interface{}, bool) {
	v, ok := s[key]
	if !ok || v == nil {
		return nil, false
	}
	if str, isStr := v.(string); isStr && strings.TrimSpace(str) == "" {
		return nil, false
	}
	return v, true
}

// String returns the answer coerced to a string, "" when absent.
func (s Submission) String(key string) string {
	v, ok := s.Answer(key)
	if !ok {
		return ""
	}
	return answerString(v)
}

// answerString renders a scalar answer as a string. JSON numbers arrive
// as float64; integral values print without a decimal point.
func answerString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"02/01/2006",
}

// parseDate tries the date formats the form and older imports produce.
func parseDate(v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}

// parseRating parses an integer rating, nil on anything unparseable.
func parseRating(v interface{}) *int {
	s := strings.TrimSpace(answerString(v))
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
