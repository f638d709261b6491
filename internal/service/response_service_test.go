package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dtalero78/siigo-retiros/internal/config"
	"github.com/dtalero78/siigo-retiros/internal/model"
	"github.com/dtalero78/siigo-retiros/internal/repository"
	"github.com/dtalero78/siigo-retiros/internal/survey"
	"github.com/dtalero78/siigo-retiros/internal/util"
)

func newTestResponseService(t *testing.T) (*ResponseService, *repository.UserRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Response{}))

	responses := repository.NewResponseRepository(db)
	users := repository.NewUserRepository(db)
	resolver := survey.DefaultResolver()
	renderer := survey.NewRenderer(nil)
	mapper := survey.NewMapper(resolver, nil)
	ai := NewAIService(config.AIConfig{})

	svc := NewResponseService(responses, users, resolver, renderer, mapper, ai, nil, zap.NewNop())
	return svc, users
}

var completeSubmission = json.RawMessage(`{
	"q3": "Laura Pérez",
	"q4": "1032456789",
	"q5": "2025-03-15",
	"q6": "1-2 años",
	"q7": "Tech",
	"q8": "Colombia",
	"q9": "Andrés Gómez",
	"q10": "Mejor oferta en otra empresa",
	"q11": "Mejor oferta laboral",
	"q12": "8",
	"q13": "SÍ",
	"q14": "El equipo",
	"q15": "Los beneficios",
	"q16_0": "4",
	"q16_1": "5",
	"q16_2": "4",
	"q16_3": "3",
	"q16_4": "5",
	"q16_5": "4",
	"q18": "NO"
}`)

func TestSubmitStoresCanonicalRecord(t *testing.T) {
	svc, _ := newTestResponseService(t)

	rec, validationErrs, err := svc.Submit(context.Background(), completeSubmission, "Tech")

	require.NoError(t, err)
	require.Empty(t, validationErrs)
	require.NotNil(t, rec)
	assert.NotZero(t, rec.ID)
	assert.Equal(t, "Laura Pérez", rec.FullName)
	assert.Equal(t, "SÍ", rec.WouldRecommend)
	assert.JSONEq(t, string(completeSubmission), string(rec.AllResponses))
}

func TestSubmitReportsValidationErrors(t *testing.T) {
	svc, _ := newTestResponseService(t)

	rec, validationErrs, err := svc.Submit(context.Background(), json.RawMessage(`{"q3":"Solo Nombre"}`), "Tech")

	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.NotEmpty(t, validationErrs)
}

func TestSubmitDuplicateIdentification(t *testing.T) {
	svc, _ := newTestResponseService(t)

	_, _, err := svc.Submit(context.Background(), completeSubmission, "Tech")
	require.NoError(t, err)

	_, _, err = svc.Submit(context.Background(), completeSubmission, "Tech")
	assert.ErrorIs(t, err, util.ErrDuplicateSubmission)
}

func TestSubmitMarksRosterEntry(t *testing.T) {
	svc, users := newTestResponseService(t)
	require.NoError(t, users.Create(&model.User{
		FirstName:      "Laura",
		Identification: "1032456789",
	}))

	_, validationErrs, err := svc.Submit(context.Background(), completeSubmission, "Tech")
	require.NoError(t, err)
	require.Empty(t, validationErrs)

	user, err := users.FindByIdentification("1032456789")
	require.NoError(t, err)
	assert.True(t, user.ResponseSubmitted)
}

func TestStatsOverSubmissions(t *testing.T) {
	svc, _ := newTestResponseService(t)

	_, validationErrs, err := svc.Submit(context.Background(), completeSubmission, "Tech")
	require.NoError(t, err)
	require.Empty(t, validationErrs)

	report, err := svc.Stats(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 8.0, report.AverageExperience)
	assert.Equal(t, 100.0, report.WouldRecommendPct)
	assert.Equal(t, 0.0, report.WouldReturnPct)

	tech, err := svc.Stats(context.Background(), "Tech")
	require.NoError(t, err)
	assert.Equal(t, 1, tech.Total)

	sales, err := svc.Stats(context.Background(), "Sales")
	require.NoError(t, err)
	assert.Equal(t, 0, sales.Total)
}

func TestAnalyzeWithoutAIConfigured(t *testing.T) {
	svc, _ := newTestResponseService(t)

	rec, _, err := svc.Submit(context.Background(), completeSubmission, "Tech")
	require.NoError(t, err)

	_, err = svc.Analyze(context.Background(), rec.ID)
	assert.ErrorIs(t, err, util.ErrAnalysisUnavailable)
}
