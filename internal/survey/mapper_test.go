package survey

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapToCanonicalGeneralCatalog(t *testing.T) {
	m := NewMapper(DefaultResolver(), nil)
	raw := json.RawMessage(`{
		"q3": "Laura Pérez",
		"q4": "1032456789",
		"q5": "2025-03-15",
		"q6": "1-2 años",
		"q7": "Tech",
		"q8": "Colombia",
		"q9": "Andrés Gómez",
		"q10": "Recibí una mejor oferta",
		"q11": "Mejor oferta laboral",
		"q12": "8",
		"q13": "SÍ",
		"q14": "El equipo",
		"q15": "Los beneficios",
		"q16_0": "4",
		"q16_1": "5",
		"q17": "Globant",
		"q18": "NO"
	}`)

	rec := m.MapToCanonical(raw, "Tech")

	assert.Equal(t, "Laura Pérez", rec.FullName)
	assert.Equal(t, "1032456789", rec.Identification)
	require.NotNil(t, rec.ExitDate)
	assert.Equal(t, "2025-03-15", rec.ExitDate.Format("2006-01-02"))
	assert.Equal(t, "1-2 años", rec.Tenure)
	assert.Equal(t, "Tech", rec.Area)
	assert.Equal(t, "Colombia", rec.Country)
	assert.Equal(t, "Andrés Gómez", rec.LastLeader)
	assert.Equal(t, "Mejor oferta laboral", rec.ExitReasonCategory)
	assert.Equal(t, "Recibí una mejor oferta", rec.ExitReasonDetail)
	require.NotNil(t, rec.ExperienceRating)
	assert.Equal(t, 8, *rec.ExperienceRating)
	assert.Equal(t, "SÍ", rec.WouldRecommend)
	assert.Equal(t, "NO", rec.WouldReturn)
	assert.Equal(t, "Globant", rec.NewCompanyInfo)

	sat := rec.SatisfactionMap()
	assert.Equal(t, "4", sat["Liderazgo de tu líder directo"])
	assert.Equal(t, "5", sat["Ambiente laboral en tu equipo"])
}

func TestMapToCanonicalKeepsRawVerbatim(t *testing.T) {
	m := NewMapper(DefaultResolver(), nil)
	raw := json.RawMessage(`{"q12":"7",  "extra": {"nested": [1,2,3]},"q13":"SÍ"}`)

	rec := m.MapToCanonical(raw, "Tech")

	assert.Equal(t, []byte(raw), []byte(rec.AllResponses))
}

func TestMapToCanonicalHeuristicFallback(t *testing.T) {
	cat := &Catalog{
		Name: "custom",
		Questions: []Question{
			{Number: 1, Prompt: "¿Cómo calificarías tu experiencia general?", Type: TypeScale, Required: true, Min: 1, Max: 10},
			{Number: 2, Prompt: "¿Recomendarías trabajar aquí a un amigo?", Type: TypeRadio, Required: true, Options: []string{"SÍ", "NO"}},
		},
	}
	resolver, err := NewResolver(cat, nil)
	require.NoError(t, err)
	m := NewMapper(resolver, nil)

	rec := m.MapToCanonical(json.RawMessage(`{"q1":"7","q2":"SÍ"}`), "")

	require.NotNil(t, rec.ExperienceRating)
	assert.Equal(t, 7, *rec.ExperienceRating)
	assert.Equal(t, "SÍ", rec.WouldRecommend)
}

func TestInferRolesAssignsEachRoleOnce(t *testing.T) {
	cat := &Catalog{
		Name: "custom",
		Questions: []Question{
			{Number: 1, Prompt: "¿Qué crees que podríamos mejorar?", Type: TypeTextarea},
			{Number: 2, Prompt: "¿Qué más podríamos mejorar en procesos?", Type: TypeTextarea},
			{Number: 3, Prompt: "Satisfacción con los siguientes aspectos", Type: TypeMatrix, Items: []string{"Liderazgo"}},
		},
	}

	roles := inferRoles(cat)

	assert.Equal(t, 1, roles[RoleWhatToImprove])
	assert.Equal(t, 3, roles[RoleSatisfaction])
	_, hasLeader := roles[RoleLastLeader]
	assert.False(t, hasLeader)
}

func TestMapToCanonicalCoercionFailures(t *testing.T) {
	m := NewMapper(DefaultResolver(), nil)
	raw := json.RawMessage(`{"q5":"no es fecha","q12":"diez"}`)

	rec := m.MapToCanonical(raw, "Tech")

	assert.Nil(t, rec.ExitDate)
	assert.Nil(t, rec.ExperienceRating)
}

func TestMapToCanonicalAuxiliaryKeys(t *testing.T) {
	m := NewMapper(DefaultResolver(), nil)
	raw := json.RawMessage(`{
		"full_name": "Pedro Ruiz",
		"identification": "52123456",
		"country": "Ecuador",
		"area": "Customer Success",
		"fechaInicio": "2023-01-10",
		"cargo": "Analista",
		"subArea": "Soporte",
		"lider": "Sandra Mora",
		"liderEntrenamiento": "Luis Peña",
		"paisContratacion": "Colombia"
	}`)

	rec := m.MapToCanonical(raw, "")

	assert.Equal(t, "Pedro Ruiz", rec.FullName)
	assert.Equal(t, "52123456", rec.Identification)
	assert.Equal(t, "Ecuador", rec.Country)
	assert.Equal(t, "Customer Success", rec.Area)
	require.NotNil(t, rec.StartDate)
	assert.Equal(t, "Analista", rec.Position)
	assert.Equal(t, "Soporte", rec.SubArea)
	assert.Equal(t, "Sandra Mora", rec.Leader)
	assert.Equal(t, "Luis Peña", rec.TrainingLeader)
	assert.Equal(t, "Colombia", rec.HiringCountry)
}

func TestMapToCanonicalQuestionWinsOverAuxiliary(t *testing.T) {
	m := NewMapper(DefaultResolver(), nil)
	raw := json.RawMessage(`{"q3":"Nombre Del Formulario","full_name":"Otro Nombre"}`)

	rec := m.MapToCanonical(raw, "Tech")

	assert.Equal(t, "Nombre Del Formulario", rec.FullName)
}

func TestMapToCanonicalNeverFails(t *testing.T) {
	m := NewMapper(DefaultResolver(), nil)

	rec := m.MapToCanonical(json.RawMessage(`not json at all`), "Tech")

	require.NotNil(t, rec)
	assert.Equal(t, "Tech", rec.Area)
	assert.Equal(t, "not json at all", string(rec.AllResponses))
}

func TestMatrixAnswersNestedShape(t *testing.T) {
	m := NewMapper(DefaultResolver(), nil)
	raw := json.RawMessage(`{"q16":{"Liderazgo de tu líder directo":4,"Cultura organizacional y valores":"5"}}`)

	rec := m.MapToCanonical(raw, "Tech")

	sat := rec.SatisfactionMap()
	assert.Equal(t, "4", sat["Liderazgo de tu líder directo"])
	assert.Equal(t, "5", sat["Cultura organizacional y valores"])
}
