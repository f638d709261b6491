package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/dtalero78/siigo-retiros/internal/config"
	"github.com/dtalero78/siigo-retiros/internal/model"
)

func newTestWhatsAppService(countryCode string) *WhatsAppService {
	return NewWhatsAppService(
		config.TwilioConfig{DefaultCountryCode: countryCode},
		config.SurveyConfig{FormURL: "https://encuesta.example.com/form"},
		nil,
		zap.NewNop(),
	)
}

func TestFormatPhoneAddsDefaultCountryCode(t *testing.T) {
	s := newTestWhatsAppService("")

	assert.Equal(t, "+573001234567", s.FormatPhone("3001234567"))
	assert.Equal(t, "+573001234567", s.FormatPhone("300 123 4567"))
	assert.Equal(t, "+573001234567", s.FormatPhone("300-123-4567"))
}

func TestFormatPhoneKeepsExistingCountryCode(t *testing.T) {
	s := newTestWhatsAppService("")

	assert.Equal(t, "+573001234567", s.FormatPhone("+57 300 123 4567"))
	assert.Equal(t, "+573001234567", s.FormatPhone("573001234567"))
}

func TestFormatPhoneConfiguredCountryCode(t *testing.T) {
	s := newTestWhatsAppService("52")

	assert.Equal(t, "+525512345678", s.FormatPhone("5512345678"))
}

func TestFormatPhoneEmpty(t *testing.T) {
	s := newTestWhatsAppService("")

	assert.Equal(t, "", s.FormatPhone(""))
	assert.Equal(t, "", s.FormatPhone("   "))
}

func TestFormURLCarriesUserID(t *testing.T) {
	s := newTestWhatsAppService("")
	user := &model.User{}
	user.ID = 42

	assert.Equal(t, "https://encuesta.example.com/form?userId=42", s.FormURL(user))
}

func TestServiceDisabledWithoutCredentials(t *testing.T) {
	s := newTestWhatsAppService("")
	assert.False(t, s.Enabled())
}
