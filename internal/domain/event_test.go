package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() *Event {
	return &Event{
		Title:       "GopherCon Europe",
		Description: "The European Go conference.",
		Overview:    "Three days of Go talks and workshops.",
		Image:       "https://cdn.example.com/gophercon.png",
		Venue:       "Convention Centre",
		Location:    "Berlin, Germany",
		Date:        "June 3, 2026",
		Time:        "9:30",
		Mode:        "in-person",
		Audience:    "developers",
		Organizer:   "Gopher Events",
		Agenda:      []string{"Keynote", "Workshops"},
		Tags:        []string{"go", "conference"},
	}
}

func TestEvent_Normalize(t *testing.T) {
	e := validEvent()
	require.NoError(t, e.Normalize())
	assert.Equal(t, "2026-06-03", e.Date)
	assert.Equal(t, "09:30", e.Time)
	assert.Empty(t, e.Slug, "Normalize must not derive the slug")
}

func TestEvent_Normalize_TrimsFieldsAndListEntries(t *testing.T) {
	e := validEvent()
	e.Title = "  GopherCon Europe  "
	e.Agenda = []string{" Keynote ", "Workshops"}
	require.NoError(t, e.Normalize())
	assert.Equal(t, "GopherCon Europe", e.Title)
	assert.Equal(t, []string{"Keynote", "Workshops"}, e.Agenda)
}

func TestEvent_Normalize_RejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(e *Event)
		wantField string
	}{
		{"missing title", func(e *Event) { e.Title = "" }, "title"},
		{"whitespace venue", func(e *Event) { e.Venue = "   " }, "venue"},
		{"missing organizer", func(e *Event) { e.Organizer = "" }, "organizer"},
		{"empty agenda", func(e *Event) { e.Agenda = nil }, "agenda"},
		{"blank agenda entry", func(e *Event) { e.Agenda = []string{"Keynote", " "} }, "agenda"},
		{"empty tags", func(e *Event) { e.Tags = []string{} }, "tags"},
		{"bad date", func(e *Event) { e.Date = "someday" }, "date"},
		{"bad time", func(e *Event) { e.Time = "24:00" }, "time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(e)
			err := e.Normalize()
			require.Error(t, err)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestEvent_Normalize_IsStableOnRepeatedWrites(t *testing.T) {
	e := validEvent()
	require.NoError(t, e.Normalize())
	date, clock := e.Date, e.Time
	require.NoError(t, e.Normalize())
	assert.Equal(t, date, e.Date)
	assert.Equal(t, clock, e.Time)
}
