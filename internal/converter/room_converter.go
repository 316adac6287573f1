package converter

import (
	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
)

// RoomCategoryToResponse converts a RoomCategory entity to RoomCategoryResponse DTO
func RoomCategoryToResponse(category *entity.RoomCategory) *dto.RoomCategoryResponse {
	if category == nil {
		return nil
	}

	return &dto.RoomCategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func RoomCategoriesToResponses(categories []entity.RoomCategory) []dto.RoomCategoryResponse {
	responses := make([]dto.RoomCategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *RoomCategoryToResponse(&categories[i])
	}
	return responses
}

// RoomStatusToResponse converts a RoomStatus entity to RoomStatusResponse DTO
func RoomStatusToResponse(status *entity.RoomStatus) *dto.RoomStatusResponse {
	if status == nil {
		return nil
	}

	return &dto.RoomStatusResponse{
		ID:          status.ID,
		Name:        status.Name,
		Color:       status.Color,
		Description: status.Description,
		IsDefault:   status.IsDefault,
		IsActive:    status.IsActive,
		CreatedAt:   status.CreatedAt,
		UpdatedAt:   status.UpdatedAt,
	}
}

func RoomStatusesToResponses(statuses []entity.RoomStatus) []dto.RoomStatusResponse {
	responses := make([]dto.RoomStatusResponse, len(statuses))
	for i := range statuses {
		responses[i] = *RoomStatusToResponse(&statuses[i])
	}
	return responses
}

func roomStatusToSummary(status *entity.RoomStatus) *dto.RoomStatusSummary {
	if status == nil {
		return nil
	}
	return &dto.RoomStatusSummary{ID: status.ID, Name: status.Name, Color: status.Color}
}

// RoomToResponse converts a Room entity to RoomResponse DTO
func RoomToResponse(room *entity.Room) *dto.RoomResponse {
	if room == nil {
		return nil
	}

	images := []string(room.Images)
	if images == nil {
		images = []string{}
	}

	return &dto.RoomResponse{
		ID:            room.ID,
		RoomNumber:    room.RoomNumber,
		CategoryID:    room.CategoryID,
		CategoryName:  room.Category.Name,
		Price:         room.Price,
		Description:   room.Description,
		Images:        images,
		CurrentStatus: roomStatusToSummary(room.CurrentStatus),
		CreatedAt:     room.CreatedAt,
		UpdatedAt:     room.UpdatedAt,
	}
}

func RoomsToResponses(rooms []entity.Room) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = *RoomToResponse(&rooms[i])
	}
	return responses
}

// RoomStatusHistoryToResponse resolves the old/new status names of a history entry.
func RoomStatusHistoryToResponse(entry *entity.RoomStatusHistory) *dto.RoomStatusHistoryResponse {
	if entry == nil {
		return nil
	}

	resp := &dto.RoomStatusHistoryResponse{
		ID:               entry.ID,
		RoomID:           entry.RoomID,
		StatusID:         entry.StatusID,
		PreviousStatusID: entry.PreviousStatusID,
		Notes:            entry.Notes,
		Reason:           entry.Reason,
		Details:          entry.Details,
		ChangedBy:        entry.ChangedBy,
		ChangedAt:        entry.ChangedAt,
		EffectiveAt:      entry.EffectiveAt,
		BookingID:        entry.BookingID,
	}
	if entry.Status != nil {
		resp.NewValue = entry.Status.Name
		resp.Color = entry.Status.Color
	}
	if entry.PreviousStatus != nil {
		resp.OldValue = entry.PreviousStatus.Name
	}
	return resp
}

func RoomStatusHistoriesToResponses(entries []entity.RoomStatusHistory) []dto.RoomStatusHistoryResponse {
	responses := make([]dto.RoomStatusHistoryResponse, len(entries))
	for i := range entries {
		responses[i] = *RoomStatusHistoryToResponse(&entries[i])
	}
	return responses
}
