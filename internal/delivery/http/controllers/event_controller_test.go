package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Toura-Alpha/dev-event-plateform/internal/delivery/http/helpers"
	"github.com/Toura-Alpha/dev-event-plateform/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventService lets each test script the service response.
type fakeEventService struct {
	createFn func(ctx context.Context, event *domain.Event) error
	getFn    func(ctx context.Context, slug string) (*domain.Event, error)
	listFn   func(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	updateFn func(ctx context.Context, id string, event *domain.Event) (*domain.Event, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	return f.createFn(ctx, event)
}

func (f *fakeEventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	return f.getFn(ctx, slug)
}

func (f *fakeEventService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	return f.listFn(ctx, filter)
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, id string, event *domain.Event) (*domain.Event, error) {
	return f.updateFn(ctx, id, event)
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

const eventBody = `{
	"title": "GopherCon Europe",
	"description": "The European Go conference.",
	"overview": "Three days of talks.",
	"image": "https://cdn.example.com/gc.png",
	"venue": "Convention Centre",
	"location": "Berlin, Germany",
	"date": "June 3, 2026",
	"time": "9:30",
	"mode": "in-person",
	"audience": "developers",
	"organizer": "Gopher Events",
	"agenda": ["Keynote"],
	"tags": ["go"]
}`

func TestEventController_ListEvents(t *testing.T) {
	var gotFilter domain.EventFilter
	svc := &fakeEventService{
		listFn: func(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
			gotFilter = filter
			return []*domain.Event{{ID: "ev-1", Slug: "gophercon-europe"}}, nil
		},
	}
	c := NewEventController(testLogger(), svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/events?tag=go&mode=online", nil)
	rr := httptest.NewRecorder()
	c.ListEvents(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.EventFilter{Tag: "go", Mode: "online"}, gotFilter)

	var resp struct {
		Data  []*domain.Event   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "gophercon-europe", resp.Data[0].Slug)
}

func TestEventController_GetEventBySlug(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &fakeEventService{
			getFn: func(ctx context.Context, slug string) (*domain.Event, error) {
				require.Equal(t, "gophercon-europe", slug)
				return &domain.Event{ID: "ev-1", Slug: slug}, nil
			},
		}
		c := NewEventController(testLogger(), svc, nil)

		req := httptest.NewRequest(http.MethodGet, "/events/gophercon-europe", nil)
		req.SetPathValue("slug", "gophercon-europe")
		rr := httptest.NewRecorder()
		c.GetEventBySlug(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEventService{
			getFn: func(ctx context.Context, slug string) (*domain.Event, error) {
				return nil, domain.ErrNotFound
			},
		}
		c := NewEventController(testLogger(), svc, nil)

		req := httptest.NewRequest(http.MethodGet, "/events/missing", nil)
		req.SetPathValue("slug", "missing")
		rr := httptest.NewRecorder()
		c.GetEventBySlug(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		resp := decodeEnvelope(t, rr)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, resp.Error.Code)
	})
}

func TestEventController_CreateEvent(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createFn   func(ctx context.Context, event *domain.Event) error
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: eventBody,
			createFn: func(ctx context.Context, event *domain.Event) error {
				event.ID = "ev-1"
				event.Slug = "gophercon-europe"
				return nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "validation error",
			body: eventBody,
			createFn: func(ctx context.Context, event *domain.Event) error {
				return &domain.ValidationError{Field: "time", Message: "must match H:mm or HH:mm"}
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name: "slug conflict",
			body: eventBody,
			createFn: func(ctx context.Context, event *domain.Event) error {
				return domain.ErrSlugTaken
			},
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeConflict,
		},
		{
			name:       "malformed json",
			body:       `{"title":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEventService{createFn: tt.createFn}
			c := NewEventController(testLogger(), svc, nil)

			req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			c.CreateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
			} else {
				assert.Nil(t, resp.Error)
			}
		})
	}
}

func TestEventController_UpdateEvent(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeEventService{
			updateFn: func(ctx context.Context, id string, event *domain.Event) (*domain.Event, error) {
				return nil, domain.ErrNotFound
			},
		}
		c := NewEventController(testLogger(), svc, nil)

		req := httptest.NewRequest(http.MethodPut, "/events/ev-missing", strings.NewReader(eventBody))
		req.SetPathValue("eventID", "ev-missing")
		rr := httptest.NewRecorder()
		c.UpdateEvent(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("updated", func(t *testing.T) {
		svc := &fakeEventService{
			updateFn: func(ctx context.Context, id string, event *domain.Event) (*domain.Event, error) {
				require.Equal(t, "ev-1", id)
				event.ID = id
				return event, nil
			},
		}
		c := NewEventController(testLogger(), svc, nil)

		req := httptest.NewRequest(http.MethodPut, "/events/ev-1", strings.NewReader(eventBody))
		req.SetPathValue("eventID", "ev-1")
		rr := httptest.NewRecorder()
		c.UpdateEvent(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestEventController_DeleteEvent(t *testing.T) {
	svc := &fakeEventService{
		deleteFn: func(ctx context.Context, id string) error {
			require.Equal(t, "ev-1", id)
			return nil
		},
	}
	c := NewEventController(testLogger(), svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "/events/ev-1", nil)
	req.SetPathValue("eventID", "ev-1")
	rr := httptest.NewRecorder()
	c.DeleteEvent(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}
