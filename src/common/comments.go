package common

import (
	"time"

	"shareit/src/apperr"
	"shareit/src/db"
	"shareit/src/models"
	"shareit/src/types"
)

// CreateComment lets a user leave feedback on an item, gated on having a
// finished booking for it: at least one booking by the author whose end is
// strictly before now. Blank text fails under the same rule.
func CreateComment(authorID, itemID uint, text string) (*types.CommentResponse, error) {
	author, err := GetUserByID(authorID)
	if err != nil {
		return nil, err
	}
	conn := db.GetDb()
	var finished int64
	err = conn.
		Model(&models.Booking{}).
		Where("item_id = ? AND booker_id = ? AND end_date < ?", itemID, authorID, time.Now()).
		Count(&finished).
		Error
	if err != nil {
		return nil, err
	}
	if finished == 0 || text == "" {
		return nil, apperr.BadRequest("User cannot leave a comment without booking")
	}

	item, err := GetItemByID(itemID)
	if err != nil {
		return nil, err
	}
	comment := models.Comment{
		Text:         text,
		ItemID:       item.ID,
		AuthorID:     author.ID,
		CreationDate: time.Now(),
	}
	if err := conn.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &types.CommentResponse{
		ID:         comment.ID,
		Text:       comment.Text,
		AuthorName: author.Name,
		Created:    comment.CreationDate,
	}, nil
}

func listComments(itemID uint) ([]types.CommentResponse, error) {
	var comments []models.Comment
	err := db.GetDb().
		Where(&models.Comment{ItemID: itemID}).
		Preload("Author").
		Order("creation_date").
		Find(&comments).
		Error
	if err != nil {
		return nil, err
	}
	out := make([]types.CommentResponse, 0, len(comments))
	for _, c := range comments {
		resp := types.CommentResponse{
			ID:      c.ID,
			Text:    c.Text,
			Created: c.CreationDate,
		}
		if c.Author != nil {
			resp.AuthorName = c.Author.Name
		}
		out = append(out, resp)
	}
	return out, nil
}
