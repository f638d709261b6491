package survey

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtalero78/siigo-retiros/internal/model"
)

func intp(n int) *int { return &n }

func TestAggregateEmpty(t *testing.T) {
	report := Aggregate(nil)

	assert.Equal(t, 0, report.Total)
	assert.Equal(t, 0.0, report.AverageExperience)
	assert.Equal(t, 0.0, report.WouldRecommendPct)
	assert.Empty(t, report.ExitReasons)
	assert.Empty(t, report.Areas)
	assert.Empty(t, report.Satisfaction)
}

func TestAggregateAverageSkipsMissingRatings(t *testing.T) {
	records := []model.Response{
		{ExperienceRating: intp(8)},
		{ExperienceRating: intp(6)},
		{},
	}

	report := Aggregate(records)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 7.0, report.AverageExperience)
}

func TestAggregateRecommendPercentages(t *testing.T) {
	records := []model.Response{
		{WouldRecommend: "SÍ", WouldReturn: "si"},
		{WouldRecommend: "NO", WouldReturn: "NO"},
		{WouldRecommend: "tal vez", WouldReturn: ""},
		{WouldRecommend: "yes", WouldReturn: "SÍ"},
	}

	report := Aggregate(records)

	assert.Equal(t, 50.0, report.WouldRecommendPct)
	assert.Equal(t, 75.0, report.WouldReturnPct)
}

func TestAggregateBucketsKeepFirstSeenOrder(t *testing.T) {
	records := []model.Response{
		{ExitReasonCategory: "Mejor oferta laboral", Country: "Colombia"},
		{ExitReasonCategory: "Presión por metas", Country: "Ecuador"},
		{ExitReasonCategory: "Mejor oferta laboral", Country: "Colombia"},
	}

	report := Aggregate(records)

	require.Len(t, report.ExitReasons, 2)
	assert.Equal(t, CountEntry{Value: "Mejor oferta laboral", Count: 2}, report.ExitReasons[0])
	assert.Equal(t, CountEntry{Value: "Presión por metas", Count: 1}, report.ExitReasons[1])

	require.Len(t, report.Countries, 2)
	assert.Equal(t, "Colombia", report.Countries[0].Value)
}

func TestAggregateAreaBreakdown(t *testing.T) {
	records := []model.Response{
		{Area: "Tech", ExperienceRating: intp(9)},
		{Area: "Tech", ExperienceRating: intp(6)},
		{Area: "Sales"},
	}

	report := Aggregate(records)

	require.Len(t, report.Areas, 2)
	assert.Equal(t, "Tech", report.Areas[0].Area)
	assert.Equal(t, 2, report.Areas[0].Count)
	assert.Equal(t, 7.5, report.Areas[0].AverageExperience)
	assert.Equal(t, "Sales", report.Areas[1].Area)
	assert.Equal(t, 0.0, report.Areas[1].AverageExperience)
}

func TestAggregateAreaPercentages(t *testing.T) {
	records := []model.Response{
		{Area: "Tech", WouldRecommend: "SÍ", WouldReturn: "NO"},
		{Area: "Tech", WouldRecommend: "NO", WouldReturn: "SÍ"},
		{Area: "Tech", WouldRecommend: "SÍ", WouldReturn: "SÍ"},
		{Area: "Sales", WouldRecommend: "tal vez", WouldReturn: ""},
	}

	report := Aggregate(records)

	require.Len(t, report.Areas, 2)
	tech := report.Areas[0]
	assert.Equal(t, "Tech", tech.Area)
	assert.Equal(t, 66.7, tech.WouldRecommendPct)
	assert.Equal(t, 66.7, tech.WouldReturnPct)

	sales := report.Areas[1]
	assert.Equal(t, 0.0, sales.WouldRecommendPct)
	assert.Equal(t, 0.0, sales.WouldReturnPct)
}

func TestAggregateSatisfactionMeans(t *testing.T) {
	sat1, _ := json.Marshal(map[string]string{"Liderazgo": "4", "Ambiente": "3"})
	sat2, _ := json.Marshal(map[string]string{"Liderazgo": "5", "Ambiente": "no aplica"})
	records := []model.Response{
		{SatisfactionRatings: sat1},
		{SatisfactionRatings: sat2},
	}

	report := Aggregate(records)

	require.Len(t, report.Satisfaction, 2)
	byItem := map[string]SatisfactionEntry{}
	for _, e := range report.Satisfaction {
		byItem[e.Item] = e
	}
	assert.Equal(t, 4.5, byItem["Liderazgo"].Average)
	assert.Equal(t, 2, byItem["Liderazgo"].Count)
	assert.Equal(t, 3.0, byItem["Ambiente"].Average)
	assert.Equal(t, 1, byItem["Ambiente"].Count)
}

func TestAggregateRounding(t *testing.T) {
	records := []model.Response{
		{ExperienceRating: intp(7), WouldRecommend: "SÍ"},
		{ExperienceRating: intp(8)},
		{ExperienceRating: intp(8)},
	}

	report := Aggregate(records)

	assert.Equal(t, 7.67, report.AverageExperience)
	assert.Equal(t, 33.3, report.WouldRecommendPct)
}

func TestAggregateDeterministic(t *testing.T) {
	sat, _ := json.Marshal(map[string]string{"B": "2", "A": "4", "C": "1"})
	records := []model.Response{
		{Area: "Tech", ExitReasonCategory: "Motivos personales", SatisfactionRatings: sat},
		{Area: "Sales", ExitReasonCategory: "Mejor oferta laboral"},
	}

	first := Aggregate(records)
	second := Aggregate(records)

	assert.Equal(t, first, second)
}
