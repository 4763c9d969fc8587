package domain

import (
	"context"
	"strings"
	"time"
)

// Event represents a published developer event listing.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"` // canonical YYYY-MM-DD
	Time        string    `json:"time"` // canonical HH:mm
	Mode        string    `json:"mode"`
	Audience    string    `json:"audience"`
	Organizer   string    `json:"organizer"`
	Agenda      []string  `json:"agenda"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Normalize trims and validates every declared field and rewrites date
// and time into their canonical forms. It runs before every persisted
// write, not only on creation. The slug is not touched here; it is
// derived from the title by the service only when the title is new or
// has changed.
func (e *Event) Normalize() error {
	required := []struct {
		name  string
		value *string
	}{
		{"title", &e.Title},
		{"description", &e.Description},
		{"overview", &e.Overview},
		{"image", &e.Image},
		{"venue", &e.Venue},
		{"location", &e.Location},
		{"mode", &e.Mode},
		{"audience", &e.Audience},
		{"organizer", &e.Organizer},
	}
	for _, f := range required {
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return newValidationError(f.name, "is required")
		}
	}

	if err := normalizeStringList("agenda", e.Agenda); err != nil {
		return err
	}
	if err := normalizeStringList("tags", e.Tags); err != nil {
		return err
	}

	date, err := NormalizeDate(e.Date)
	if err != nil {
		return err
	}
	e.Date = date

	t, err := NormalizeTime(e.Time)
	if err != nil {
		return err
	}
	e.Time = t

	return nil
}

func normalizeStringList(field string, items []string) error {
	if len(items) == 0 {
		return newValidationError(field, "must contain at least one entry")
	}
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
		if items[i] == "" {
			return newValidationError(field, "entries must not be empty")
		}
	}
	return nil
}

// EventFilter narrows ListEvents results. Zero values mean no filter.
type EventFilter struct {
	Tag  string
	Mode string
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for event listings.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context, filter EventFilter) ([]*Event, error)
	UpdateEvent(ctx context.Context, id string, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
