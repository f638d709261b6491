package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dtalero78/siigo-retiros/internal/model"
	"github.com/dtalero78/siigo-retiros/internal/util"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Response{}))
	return db
}

func TestResponseCreateAndFind(t *testing.T) {
	repo := NewResponseRepository(testDB(t))

	rec := &model.Response{FullName: "Laura Pérez", Identification: "1032456789", Area: "Tech"}
	require.NoError(t, repo.Create(rec))
	assert.NotZero(t, rec.ID)

	found, err := repo.FindByID(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laura Pérez", found.FullName)

	byIdent, err := repo.FindByIdentification("1032456789")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, byIdent.ID)
}

func TestResponseCreateDuplicateIdentification(t *testing.T) {
	repo := NewResponseRepository(testDB(t))

	require.NoError(t, repo.Create(&model.Response{Identification: "123"}))

	err := repo.Create(&model.Response{Identification: "123"})
	assert.ErrorIs(t, err, util.ErrDuplicateSubmission)
}

func TestResponseFindAllFiltersAndPages(t *testing.T) {
	repo := NewResponseRepository(testDB(t))

	require.NoError(t, repo.Create(&model.Response{Identification: "1", Area: "Tech"}))
	require.NoError(t, repo.Create(&model.Response{Identification: "2", Area: "Sales"}))
	require.NoError(t, repo.Create(&model.Response{Identification: "3", Area: "Tech"}))

	all, total, err := repo.FindAll("", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, all, 3)

	tech, total, err := repo.FindAll("Tech", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, tech, 2)

	paged, total, err := repo.FindAll("", 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, paged, 1)
}

func TestResponseDelete(t *testing.T) {
	repo := NewResponseRepository(testDB(t))

	rec := &model.Response{Identification: "77"}
	require.NoError(t, repo.Create(rec))
	require.NoError(t, repo.Delete(rec.ID))

	_, err := repo.FindByID(rec.ID)
	assert.ErrorIs(t, err, util.ErrResponseNotFound)

	assert.ErrorIs(t, repo.Delete(9999), util.ErrResponseNotFound)
}

func TestResponseUpdateAnalysis(t *testing.T) {
	repo := NewResponseRepository(testDB(t))

	rec := &model.Response{Identification: "88"}
	require.NoError(t, repo.Create(rec))
	require.NoError(t, repo.UpdateAnalysis(rec.ID, "resumen ejecutivo"))

	found, err := repo.FindByID(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "resumen ejecutivo", found.Analysis)

	assert.ErrorIs(t, repo.UpdateAnalysis(9999, "x"), util.ErrResponseNotFound)
}
