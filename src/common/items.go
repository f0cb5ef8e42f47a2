package common

import (
	"errors"
	"strings"

	"shareit/src/apperr"
	"shareit/src/db"
	"shareit/src/models"
	"shareit/src/types"

	"gorm.io/gorm"
)

func CreateItem(ownerID uint, body *types.CreateItemRequestBody) (*models.Item, error) {
	if err := EnsureUser(ownerID); err != nil {
		return nil, err
	}
	conn := db.GetDb()
	item := models.Item{
		Name:        body.Name,
		Description: body.Description,
		Available:   *body.Available,
		OwnerID:     ownerID,
	}
	if body.RequestID != nil {
		// An unresolvable request id is dropped, not rejected.
		var request models.ItemRequest
		err := conn.Where(&models.ItemRequest{ID: *body.RequestID}).First(&request).Error
		if err == nil {
			item.RequestID = &request.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	if err := conn.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem applies a merge-patch to name/description/availability. Only the
// owner may edit.
func UpdateItem(userID, itemID uint, body *types.UpdateItemRequestBody) (*models.Item, error) {
	if err := EnsureUser(userID); err != nil {
		return nil, err
	}
	item, err := GetItemByID(itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != userID {
		return nil, apperr.Forbidden("User has no access to edit")
	}
	if body.Name != nil {
		item.Name = *body.Name
	}
	if body.Description != nil {
		item.Description = *body.Description
	}
	if body.Available != nil {
		item.Available = *body.Available
	}
	if err := db.GetDb().Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func GetItemByID(itemID uint) (*models.Item, error) {
	var item models.Item
	err := db.GetDb().
		Model(&models.Item{}).
		Where(&models.Item{ID: itemID}).
		First(&item).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Item not found - id: %d", itemID)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItemDetail decorates an item with its comments and, for the owner's own
// view, the last and next booking shorts.
func GetItemDetail(userID, itemID uint) (*types.ItemDetailResponse, error) {
	if err := EnsureUser(userID); err != nil {
		return nil, err
	}
	item, err := GetItemByID(itemID)
	if err != nil {
		return nil, err
	}
	return decorateItem(item, userID)
}

// ListItemsByOwner returns the caller's items with booking and comment
// decorations. An empty list is a normal outcome.
func ListItemsByOwner(ownerID uint) ([]types.ItemDetailResponse, error) {
	if err := EnsureUser(ownerID); err != nil {
		return nil, err
	}
	var items []models.Item
	err := db.GetDb().
		Where(&models.Item{OwnerID: ownerID}).
		Order("id").
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}
	details := make([]types.ItemDetailResponse, 0, len(items))
	for i := range items {
		detail, err := decorateItem(&items[i], ownerID)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

// SearchItems scans name and description case-insensitively among available
// items. A blank query short-circuits to an empty result set.
func SearchItems(text string) ([]models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []models.Item{}, nil
	}
	pattern := "%" + strings.ToLower(text) + "%"
	var items []models.Item
	err := db.GetDb().
		Where("available = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func ItemToResponse(item *models.Item) types.ItemResponse {
	return types.ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		OwnerID:     item.OwnerID,
		RequestID:   item.RequestID,
	}
}

func decorateItem(item *models.Item, userID uint) (*types.ItemDetailResponse, error) {
	comments, err := listComments(item.ID)
	if err != nil {
		return nil, err
	}
	detail := types.ItemDetailResponse{
		ItemResponse: ItemToResponse(item),
		Comments:     comments,
	}
	if item.OwnerID != userID {
		return &detail, nil
	}
	last, err := FindLastBooking(item.ID, userID)
	if err != nil {
		return nil, err
	}
	if last != nil {
		detail.LastBooking = &types.BookingShort{ID: last.ID, BookerID: last.BookerID}
	}
	next, err := FindNextBooking(item.ID, userID)
	if err != nil {
		return nil, err
	}
	if next != nil {
		detail.NextBooking = &types.BookingShort{ID: next.ID, BookerID: next.BookerID}
	}
	return &detail, nil
}
