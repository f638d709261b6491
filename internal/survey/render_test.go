package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldScale(t *testing.T) {
	r := NewRenderer(nil)
	q := Question{Number: 12, Prompt: "escala", Type: TypeScale, Required: true,
		Min: 1, Max: 10, Labels: []string{"Nada satisfecho", "Muy satisfecho"}}

	w := r.Field(q)

	assert.Equal(t, "q12", w.Key)
	assert.Equal(t, TypeScale, w.Control)
	require.NotNil(t, w.ScaleSpec)
	assert.Equal(t, 1, w.ScaleSpec.Min)
	assert.Equal(t, 10, w.ScaleSpec.Max)
	assert.Equal(t, "Nada satisfecho", w.ScaleSpec.MinLabel)
	assert.Equal(t, "Muy satisfecho", w.ScaleSpec.MaxLabel)
	require.Len(t, w.Options, 10)
	assert.Equal(t, "1", w.Options[0].Value)
	assert.Equal(t, "10", w.Options[9].Value)
}

func TestFieldRadioOptions(t *testing.T) {
	r := NewRenderer(nil)
	q := Question{Number: 13, Prompt: "si o no", Type: TypeRadio, Required: true,
		Options: []string{"SÍ", "NO"}}

	w := r.Field(q)

	require.Len(t, w.Options, 2)
	assert.Equal(t, Option{Value: "SÍ", Label: "SÍ"}, w.Options[0])
	assert.Nil(t, w.ScaleSpec)
	assert.Empty(t, w.MatrixRows)
}

func TestFieldMatrixExpandsRows(t *testing.T) {
	r := NewRenderer(nil)
	q := Question{Number: 16, Prompt: "satisfacción", Type: TypeMatrix, Required: true,
		Items:       []string{"Liderazgo", "Ambiente"},
		Scale:       []int{1, 2, 3, 4, 5},
		ScaleLabels: []string{"Muy insatisfecho", "Insatisfecho", "Neutral", "Satisfecho", "Muy satisfecho"}}

	w := r.Field(q)

	require.Len(t, w.MatrixRows, 2)
	assert.Equal(t, "q16_0", w.MatrixRows[0].Key)
	assert.Equal(t, "Liderazgo", w.MatrixRows[0].Item)
	require.Len(t, w.MatrixRows[0].Options, 5)
	assert.Equal(t, Option{Value: "3", Label: "Neutral"}, w.MatrixRows[0].Options[2])
	assert.Equal(t, "q16_1", w.MatrixRows[1].Key)
}

func TestFieldUnknownTypeFallsBackToText(t *testing.T) {
	r := NewRenderer(nil)
	q := Question{Number: 7, Prompt: "???", Type: Type("slider"), Required: true}

	w := r.Field(q)

	assert.Equal(t, TypeText, w.Control)
	assert.Equal(t, "q7", w.Key)
}

func TestFieldsKeepsCatalogOrder(t *testing.T) {
	r := NewRenderer(nil)
	cat := GeneralCatalog()

	widgets := r.Fields(cat)

	require.Len(t, widgets, len(cat.Questions))
	for i, q := range cat.Questions {
		assert.Equal(t, q.Key(), widgets[i].Key)
	}
}

func TestValidateSubmissionReportsAllMisses(t *testing.T) {
	r := NewRenderer(nil)
	cat := &Catalog{
		Name: "mini",
		Questions: []Question{
			{Number: 1, Prompt: "nombre", Type: TypeText, Required: true},
			{Number: 2, Prompt: "país", Type: TypeRadio, Required: true, Options: []string{"Colombia", "Perú"}},
			{Number: 3, Prompt: "comentario", Type: TypeTextarea, Required: false},
		},
	}

	errs := r.ValidateSubmission(cat, Submission{})

	require.Len(t, errs, 2)
	assert.Equal(t, "q1", errs[0].Key)
	assert.Equal(t, "q2", errs[1].Key)
}

func TestValidateAnswerRadioRejectsUnknownOption(t *testing.T) {
	r := NewRenderer(nil)
	q := Question{Number: 2, Prompt: "país", Type: TypeRadio, Required: true,
		Options: []string{"Colombia", "Perú"}}

	assert.Empty(t, r.ValidateAnswer(q, Submission{"q2": "Colombia"}))
	assert.Len(t, r.ValidateAnswer(q, Submission{"q2": "Chile"}), 1)
}

func TestValidateAnswerScaleBounds(t *testing.T) {
	r := NewRenderer(nil)
	q := Question{Number: 12, Prompt: "escala", Type: TypeScale, Required: true, Min: 1, Max: 10}

	assert.Empty(t, r.ValidateAnswer(q, Submission{"q12": "7"}))
	assert.Empty(t, r.ValidateAnswer(q, Submission{"q12": float64(10)}))
	assert.Len(t, r.ValidateAnswer(q, Submission{"q12": "11"}), 1)
	assert.Len(t, r.ValidateAnswer(q, Submission{"q12": "cero"}), 1)
	assert.Len(t, r.ValidateAnswer(q, Submission{}), 1)
}

func TestValidateAnswerOptionalSkipped(t *testing.T) {
	r := NewRenderer(nil)
	q := Question{Number: 17, Prompt: "empresa", Type: TypeTextarea, Required: false}

	assert.Empty(t, r.ValidateAnswer(q, Submission{}))
}

func TestValidateMatrixFlatKeys(t *testing.T) {
	r := NewRenderer(nil)
	q := Question{Number: 16, Prompt: "satisfacción", Type: TypeMatrix, Required: true,
		Items: []string{"Liderazgo", "Ambiente", "Cultura"},
		Scale: []int{1, 2, 3, 4, 5}}

	errs := r.ValidateAnswer(q, Submission{"q16_0": "4", "q16_2": "5"})

	require.Len(t, errs, 1)
	assert.Equal(t, "q16_1", errs[0].Key)
	assert.Equal(t, "satisfacción - Ambiente", errs[0].Prompt)
}

func TestValidateMatrixNestedObject(t *testing.T) {
	r := NewRenderer(nil)
	q := Question{Number: 16, Prompt: "satisfacción", Type: TypeMatrix, Required: true,
		Items: []string{"Liderazgo", "Ambiente"},
		Scale: []int{1, 2, 3, 4, 5}}

	sub := Submission{"q16": map[string]interface{}{
		"Liderazgo": "4",
		"Ambiente":  float64(5),
	}}

	assert.Empty(t, r.ValidateAnswer(q, sub))
}
