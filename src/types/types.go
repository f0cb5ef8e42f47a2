package types

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BookingStatus is the persisted lifecycle value of a booking.
type BookingStatus string

const (
	BOOKING_WAITING  BookingStatus = "WAITING"
	BOOKING_APPROVED BookingStatus = "APPROVED"
	BOOKING_REJECTED BookingStatus = "REJECTED"
)

// BookingState is a query filter over bookings, not a stored field.
type BookingState string

const (
	STATE_ALL      BookingState = "ALL"
	STATE_CURRENT  BookingState = "CURRENT"
	STATE_PAST     BookingState = "PAST"
	STATE_FUTURE   BookingState = "FUTURE"
	STATE_WAITING  BookingState = "WAITING"
	STATE_REJECTED BookingState = "REJECTED"
)

// ParseBookingState resolves a query string into a known state. ALL when empty.
func ParseBookingState(s string) (BookingState, bool) {
	if s == "" {
		return STATE_ALL, true
	}
	state := BookingState(strings.ToUpper(s))
	switch state {
	case STATE_ALL, STATE_CURRENT, STATE_PAST, STATE_FUTURE, STATE_WAITING, STATE_REJECTED:
		return state, true
	}
	return "", false
}
