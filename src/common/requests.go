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

func CreateItemRequest(requestorID uint, description string) (*models.ItemRequest, error) {
	if err := EnsureUser(requestorID); err != nil {
		return nil, err
	}
	request := models.ItemRequest{
		Description: description,
		RequestorID: requestorID,
		Created:     time.Now(),
	}
	if err := db.GetDb().Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// ListOwnRequests returns the caller's requests, newest first, each annotated
// with the items that reference it.
func ListOwnRequests(userID uint) ([]types.ItemRequestResponse, error) {
	if err := EnsureUser(userID); err != nil {
		return nil, err
	}
	var requests []models.ItemRequest
	err := db.GetDb().
		Where(&models.ItemRequest{RequestorID: userID}).
		Preload("Items").
		Order("created DESC").
		Find(&requests).
		Error
	if err != nil {
		return nil, err
	}
	return requestsToResponses(requests), nil
}

// ListOtherRequests pages through requests NOT authored by the caller, newest
// first.
func ListOtherRequests(userID uint, from, size int) ([]types.ItemRequestResponse, error) {
	if err := EnsureUser(userID); err != nil {
		return nil, err
	}
	var requests []models.ItemRequest
	err := db.GetDb().
		Where("requestor_id <> ?", userID).
		Preload("Items").
		Order("created DESC").
		Offset(from).
		Limit(size).
		Find(&requests).
		Error
	if err != nil {
		return nil, err
	}
	return requestsToResponses(requests), nil
}

func GetItemRequest(userID, requestID uint) (*types.ItemRequestResponse, error) {
	if err := EnsureUser(userID); err != nil {
		return nil, err
	}
	var request models.ItemRequest
	err := db.GetDb().
		Where(&models.ItemRequest{ID: requestID}).
		Preload("Items").
		First(&request).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Request %d not found", requestID)
	}
	if err != nil {
		return nil, err
	}
	resp := requestToResponse(&request)
	return &resp, nil
}

func requestToResponse(request *models.ItemRequest) types.ItemRequestResponse {
	items := make([]types.ItemResponse, 0, len(request.Items))
	for i := range request.Items {
		items = append(items, ItemToResponse(&request.Items[i]))
	}
	return types.ItemRequestResponse{
		ID:          request.ID,
		Description: request.Description,
		Created:     request.Created,
		Items:       items,
	}
}

func requestsToResponses(requests []models.ItemRequest) []types.ItemRequestResponse {
	out := make([]types.ItemRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, requestToResponse(&requests[i]))
	}
	return out
}
