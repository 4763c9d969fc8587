package postgres

import (
	"database/sql"

	"github.com/Toura-Alpha/dev-event-plateform/internal/domain"
)

// Store bundles every repository over one shared handle. It is built
// exactly once in main and injected into the services, so handlers have
// a single lookup surface without ambient globals.
type Store struct {
	Events   domain.EventRepository
	Bookings domain.BookingRepository
	Users    domain.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		Events:   NewEventRepository(db),
		Bookings: NewBookingRepository(db),
		Users:    NewUserRepository(db),
	}
}
