package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtalero78/siigo-retiros/internal/model"
	"github.com/dtalero78/siigo-retiros/internal/util"
)

func TestUserCreateBatchUpserts(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	require.NoError(t, repo.Create(&model.User{
		FirstName:      "Laura",
		Identification: "100",
		Phone:          "3001234567",
	}))

	created, updated, err := repo.CreateBatch([]model.User{
		{FirstName: "Laura", LastName: "Pérez", Identification: "100", Phone: "3007654321"},
		{FirstName: "Pedro", Identification: "200"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, updated)

	refreshed, err := repo.FindByIdentification("100")
	require.NoError(t, err)
	assert.Equal(t, "Pérez", refreshed.LastName)
	assert.Equal(t, "3007654321", refreshed.Phone)
}

func TestUserWhatsAppAndSubmissionFlags(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	user := &model.User{FirstName: "Ana", Identification: "300", Phone: "3000000000"}
	require.NoError(t, repo.Create(user))

	require.NoError(t, repo.MarkWhatsAppSent(user.ID, "SM123"))
	require.NoError(t, repo.MarkWhatsAppSent(user.ID, "SM456"))

	sent, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, sent.WhatsAppSent)
	assert.Equal(t, "SM456", sent.WhatsAppMessageID)
	assert.Equal(t, 2, sent.WhatsAppSendCount)
	assert.NotNil(t, sent.WhatsAppSentAt)

	require.NoError(t, repo.MarkResponseSubmitted("300"))
	submitted, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, submitted.ResponseSubmitted)
	assert.NotNil(t, submitted.ResponseSubmittedAt)
}

func TestUserFindWithoutResponse(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	require.NoError(t, repo.Create(&model.User{FirstName: "A", Identification: "1"}))
	require.NoError(t, repo.Create(&model.User{FirstName: "B", Identification: "2"}))
	require.NoError(t, repo.MarkResponseSubmitted("1"))

	pending, err := repo.FindWithoutResponse()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "2", pending[0].Identification)
}

func TestUserStats(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	require.NoError(t, repo.Create(&model.User{Identification: "1", FirstName: "A"}))
	require.NoError(t, repo.Create(&model.User{Identification: "2", FirstName: "B"}))
	require.NoError(t, repo.Create(&model.User{Identification: "3", FirstName: "C"}))
	require.NoError(t, repo.MarkWhatsAppSent(1, "SM1"))
	require.NoError(t, repo.MarkResponseSubmitted("2"))

	stats, err := repo.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Total)
	assert.EqualValues(t, 1, stats.Sent)
	assert.EqualValues(t, 1, stats.Submitted)
	assert.EqualValues(t, 2, stats.Pending)
}

func TestUserDeleteMissing(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	assert.ErrorIs(t, repo.Delete(42), util.ErrUserNotFound)
}
