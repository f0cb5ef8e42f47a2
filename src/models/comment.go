package models

import (
	"shareit/src/types"
	"time"
)

type Comment struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Text         string    `json:"text,omitempty"`
	ItemID       uint      `json:"item_id,omitempty"`
	AuthorID     uint      `json:"author_id,omitempty"`
	CreationDate time.Time `json:"creation_date,omitempty"`

	Item   *Item `gorm:"foreignKey:item_id" json:"item,omitempty"`
	Author *User `gorm:"foreignKey:author_id" json:"author,omitempty"`

	types.Timestamps
}
