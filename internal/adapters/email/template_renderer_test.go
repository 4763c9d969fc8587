package email

import (
	"testing"

	"github.com/Toura-Alpha/dev-event-plateform/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_BookingConfirmation(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.BookingConfirmationEmailData{
		Email:      "a@b.com",
		EventTitle: "GopherCon Europe",
		EventDate:  "2026-06-03",
		EventTime:  "09:30",
		Venue:      "Convention Centre",
		Location:   "Berlin, Germany",
	}

	subject, html, text, err := r.Render("booking_confirmation", data)
	require.NoError(t, err)
	assert.Equal(t, "Your booking for GopherCon Europe is confirmed", subject)
	assert.Contains(t, html, "GopherCon Europe")
	assert.Contains(t, html, "2026-06-03")
	assert.Contains(t, text, "Convention Centre")
	assert.Contains(t, text, "09:30")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()
	_, _, _, err := r.Render("no_such_template", nil)
	require.Error(t, err)
}
