package types

import "time"

// Shortened nested representations for API shape only. Internally these are
// foreign-key lookups, never owned sub-objects.

type ItemShort struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type UserShort struct {
	ID uint `json:"id"`
}

type BookingShort struct {
	ID       uint `json:"id"`
	BookerID uint `json:"bookerId"`
}

type BookingResponse struct {
	ID     uint          `json:"id"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Status BookingStatus `json:"status"`
	Item   ItemShort     `json:"item"`
	Booker UserShort     `json:"booker"`
}

type CommentResponse struct {
	ID         uint      `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     uint   `json:"ownerId"`
	RequestID   *uint  `json:"requestId,omitempty"`
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingShort     `json:"lastBooking"`
	NextBooking *BookingShort     `json:"nextBooking"`
	Comments    []CommentResponse `json:"comments"`
}

type ItemRequestResponse struct {
	ID          uint           `json:"id"`
	Description string         `json:"description"`
	Created     time.Time      `json:"created"`
	Items       []ItemResponse `json:"items"`
}
