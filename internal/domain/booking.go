package domain

import (
	"context"
	"time"
)

// Booking represents a booking for an event. EventID is a non-owning
// reference: it is checked against the event store when set or changed,
// but deleting the event later leaves the booking dangling.
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingUpdate carries the mutable booking fields for an update.
// Nil means the field is unchanged.
type BookingUpdate struct {
	EventID *string
	Email   *string
}

// BookingRepository defines the interface for booking storage
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Booking, error)
	Update(ctx context.Context, booking *Booking) error
}

// BookingService defines the business logic for bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, eventID, email string) (*Booking, error)
	UpdateBooking(ctx context.Context, id string, update BookingUpdate) (*Booking, error)
	ListBookingsByEvent(ctx context.Context, eventID string) ([]*Booking, error)
}
