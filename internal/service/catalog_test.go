package service

import (
	"os"
	"path/filepath"
	"testing"

	"deckbot/internal/domain"
	"deckbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.csv")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCatalogService_EnsureSeeded(t *testing.T) {
	seed := "filename,name_en,description_en,name_ru,description_ru\n" +
		"fool.jpg,The Fool,New beginnings.,Шут,Новые начинания.\n" +
		"magician.jpg,The Magician,Willpower.,Маг,Сила воли.\n"

	cardRepo := new(testutil.MockCardRepository)
	cardRepo.On("Count").Return(0, nil)
	cardRepo.On("Import", []domain.Card{
		{Filename: "fool.jpg", NameEN: "The Fool", DescriptionEN: "New beginnings.", NameRU: "Шут", DescriptionRU: "Новые начинания."},
		{Filename: "magician.jpg", NameEN: "The Magician", DescriptionEN: "Willpower.", NameRU: "Маг", DescriptionRU: "Сила воли."},
	}).Return(nil)

	catalog := NewCatalogService(cardRepo, testutil.NewTestLogger())

	assert.NoError(t, catalog.EnsureSeeded(writeSeedFile(t, seed)))
	cardRepo.AssertExpectations(t)
}

func TestCatalogService_EnsureSeeded_AlreadyPopulated(t *testing.T) {
	cardRepo := new(testutil.MockCardRepository)
	cardRepo.On("Count").Return(78, nil)

	catalog := NewCatalogService(cardRepo, testutil.NewTestLogger())

	assert.NoError(t, catalog.EnsureSeeded("does-not-matter.csv"))
	cardRepo.AssertNotCalled(t, "Import", mock.Anything)
}

func TestCatalogService_EnsureSeeded_MissingFile(t *testing.T) {
	cardRepo := new(testutil.MockCardRepository)
	cardRepo.On("Count").Return(0, nil)

	catalog := NewCatalogService(cardRepo, testutil.NewTestLogger())

	assert.Error(t, catalog.EnsureSeeded(filepath.Join(t.TempDir(), "missing.csv")))
}

func TestCatalogService_EnsureSeeded_HeaderOnly(t *testing.T) {
	cardRepo := new(testutil.MockCardRepository)
	cardRepo.On("Count").Return(0, nil)

	catalog := NewCatalogService(cardRepo, testutil.NewTestLogger())

	err := catalog.EnsureSeeded(writeSeedFile(t, "filename,name_en,description_en,name_ru,description_ru\n"))

	assert.Error(t, err)
	cardRepo.AssertNotCalled(t, "Import", mock.Anything)
}
