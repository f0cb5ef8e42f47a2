package models

import (
	"shareit/src/types"
	"time"
)

type ItemRequest struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Description string    `json:"description,omitempty"`
	RequestorID uint      `json:"requestor_id,omitempty"`
	Created     time.Time `json:"created,omitempty"`

	Requestor *User `gorm:"foreignKey:requestor_id" json:"requestor,omitempty"`
	// Items that reference this request; resolved at read time, never stored.
	Items []Item `gorm:"foreignKey:request_id" json:"items,omitempty"`

	types.Timestamps
}
