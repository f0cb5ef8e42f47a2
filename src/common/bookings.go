package common

import (
	"errors"
	"time"

	"shareit/src/apperr"
	"shareit/src/db"
	"shareit/src/models"
	"shareit/src/types"

	"gorm.io/gorm"
)

// CreateBooking records a WAITING booking of an item by a prospective booker.
// The item's calendar is not locked: overlapping bookings on the same item are
// accepted, and callers decide by approving or rejecting them.
func CreateBooking(bookerID, itemID uint, start, end time.Time) (*types.BookingResponse, error) {
	if !end.After(start) {
		return nil, apperr.BadRequest("End date should be after the start date")
	}
	item, err := GetItemByID(itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID == bookerID {
		// Reported as not-found so the owner/booker split is not leaked.
		return nil, apperr.NotFound("Owner cannot book his own item")
	}
	if !item.Available {
		return nil, apperr.BadRequest("Booking is not available")
	}
	booker, err := GetUserByID(bookerID)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		Start:    start,
		End:      end,
		Status:   types.BOOKING_WAITING,
		ItemID:   item.ID,
		BookerID: booker.ID,
	}
	if err := db.GetDb().Create(&booking).Error; err != nil {
		return nil, err
	}
	booking.Item = item
	resp := bookingToResponse(&booking)
	return &resp, nil
}

// SetBookingStatus moves a WAITING booking to APPROVED or REJECTED. Only the
// item's owner may decide, and APPROVED is terminal. The write is conditional
// on the status read inside the transaction, so a concurrent decision loses
// cleanly instead of silently overwriting.
func SetBookingStatus(bookingID, userID uint, approved bool) (*types.BookingResponse, error) {
	var booking models.Booking
	conn := db.GetDb()
	err := conn.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: bookingID}).
			Preload("Item").
			First(&booking).
			Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Booking not found %d", bookingID)
		}
		if err != nil {
			return err
		}
		if booking.Item == nil || booking.Item.OwnerID != userID {
			return apperr.NotFound("Booker cannot set status to the booking")
		}
		if booking.Status == types.BOOKING_APPROVED {
			return apperr.BadRequest("Status is already set APPROVED")
		}

		next := types.BOOKING_REJECTED
		if approved {
			next = types.BOOKING_APPROVED
		}
		res := tx.
			Model(&models.Booking{}).
			Where("id = ? AND status = ?", booking.ID, booking.Status).
			Update("status", next)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.BadRequest("Status is already set APPROVED")
		}
		booking.Status = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := bookingToResponse(&booking)
	return &resp, nil
}

// GetBookingByID is visible only to the booker or the item's owner; anyone
// else gets the not-found kind rather than a forbidden one.
func GetBookingByID(bookingID, userID uint) (*types.BookingResponse, error) {
	var booking models.Booking
	err := db.GetDb().
		Model(&models.Booking{}).
		Where(&models.Booking{ID: bookingID}).
		Preload("Item").
		First(&booking).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Booking with id %d is not found", bookingID)
	}
	if err != nil {
		return nil, err
	}
	if booking.BookerID != userID && (booking.Item == nil || booking.Item.OwnerID != userID) {
		return nil, apperr.NotFound("no rights for this booking")
	}
	resp := bookingToResponse(&booking)
	return &resp, nil
}

// ListBookingsForBooker filters the booker's bookings by state, evaluated
// against now at call time.
func ListBookingsForBooker(bookerID uint, state types.BookingState) ([]types.BookingResponse, error) {
	if err := EnsureUser(bookerID); err != nil {
		return nil, err
	}
	q := db.GetDb().
		Model(&models.Booking{}).
		Where("booker_id = ?", bookerID).
		Preload("Item")
	return runStateQuery(q, state)
}

// ListBookingsForOwner filters bookings of the owner's items by state.
func ListBookingsForOwner(ownerID uint, state types.BookingState) ([]types.BookingResponse, error) {
	if err := EnsureUser(ownerID); err != nil {
		return nil, err
	}
	q := ownerScope(ownerID).Preload("Item")
	return runStateQuery(q, state)
}

// ListBookingsForBookerPage returns a single page ordered by start descending.
// Pagination bypasses the state filter entirely; that is the documented shape
// of the paginated view, not an oversight of this code path.
func ListBookingsForBookerPage(bookerID uint, from, size int) ([]types.BookingResponse, error) {
	if err := EnsureUser(bookerID); err != nil {
		return nil, err
	}
	var bookings []models.Booking
	err := db.GetDb().
		Model(&models.Booking{}).
		Where("booker_id = ?", bookerID).
		Preload("Item").
		Order("start_date DESC").
		Offset(from).
		Limit(size).
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	return bookingsToResponses(bookings), nil
}

func ListBookingsForOwnerPage(ownerID uint, from, size int) ([]types.BookingResponse, error) {
	if err := EnsureUser(ownerID); err != nil {
		return nil, err
	}
	var bookings []models.Booking
	err := ownerScope(ownerID).
		Preload("Item").
		Order("start_date DESC").
		Offset(from).
		Limit(size).
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	return bookingsToResponses(bookings), nil
}

// FindLastBooking returns the chronologically most recent booking that has
// started, for an item under an owner. Absence is a normal outcome.
func FindLastBooking(itemID, ownerID uint) (*models.Booking, error) {
	return firstBooking(itemID, ownerID, "start_date <= ?", "start_date DESC")
}

// FindNextBooking returns the soonest upcoming booking for an item under an
// owner.
func FindNextBooking(itemID, ownerID uint) (*models.Booking, error) {
	return firstBooking(itemID, ownerID, "start_date > ?", "start_date ASC")
}

func firstBooking(itemID, ownerID uint, cond, order string) (*models.Booking, error) {
	var booking models.Booking
	err := ownerScope(ownerID).
		Where("item_id = ?", itemID).
		Where(cond, time.Now()).
		Order(order).
		First(&booking).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func ownerScope(ownerID uint) *gorm.DB {
	return db.GetDb().
		Model(&models.Booking{}).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
}

// One ordering convention for both the booker and the owner view, per state.
func runStateQuery(q *gorm.DB, state types.BookingState) ([]types.BookingResponse, error) {
	now := time.Now()
	switch state {
	case types.STATE_ALL:
		q = q.Order("start_date DESC")
	case types.STATE_CURRENT:
		q = q.Where("start_date <= ? AND end_date > ?", now, now).Order("start_date")
	case types.STATE_PAST:
		q = q.Where("end_date <= ?", now).Order("start_date")
	case types.STATE_FUTURE:
		q = q.Where("start_date >= ?", now).Order("start_date DESC")
	case types.STATE_WAITING:
		q = q.Where("bookings.status = ?", types.BOOKING_WAITING).Order("start_date")
	case types.STATE_REJECTED:
		q = q.Where("bookings.status = ?", types.BOOKING_REJECTED).Order("start_date")
	default:
		return nil, apperr.UnsupportedState(string(state))
	}
	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookingsToResponses(bookings), nil
}

func bookingToResponse(booking *models.Booking) types.BookingResponse {
	resp := types.BookingResponse{
		ID:     booking.ID,
		Start:  booking.Start,
		End:    booking.End,
		Status: booking.Status,
		Booker: types.UserShort{ID: booking.BookerID},
		Item:   types.ItemShort{ID: booking.ItemID},
	}
	if booking.Item != nil {
		resp.Item.Name = booking.Item.Name
	}
	return resp
}

func bookingsToResponses(bookings []models.Booking) []types.BookingResponse {
	out := make([]types.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookingToResponse(&bookings[i]))
	}
	return out
}
