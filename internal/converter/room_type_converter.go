package converter

import (
	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
)

func RoomTypeToResponse(roomType *entity.RoomType) *dto.RoomTypeResponse {
	if roomType == nil {
		return nil
	}

	amenities := []string(roomType.Amenities)
	if amenities == nil {
		amenities = []string{}
	}

	resp := &dto.RoomTypeResponse{
		ID:             roomType.ID,
		Name:           roomType.Name,
		Description:    roomType.Description,
		BasePrice:      roomType.BasePrice,
		MaxOccupancy:   roomType.MaxOccupancy,
		TotalRooms:     roomType.TotalRooms,
		AvailableRooms: roomType.AvailableRooms,
		Amenities:      amenities,
		BedType:        roomType.BedType,
		Size:           roomType.Size,
		CreatedAt:      roomType.CreatedAt,
		DeletedBy:      roomType.DeletedBy,
	}
	if roomType.DeletedAt.Valid {
		deletedAt := roomType.DeletedAt.Time
		resp.DeletedAt = &deletedAt
	}
	return resp
}

func RoomTypesToResponses(roomTypes []entity.RoomType) []dto.RoomTypeResponse {
	responses := make([]dto.RoomTypeResponse, len(roomTypes))
	for i := range roomTypes {
		responses[i] = *RoomTypeToResponse(&roomTypes[i])
	}
	return responses
}

func RoomTypeHistoryToResponse(entry *entity.RoomTypeHistoryEntry) *dto.RoomTypeHistoryResponse {
	if entry == nil {
		return nil
	}

	var changes []dto.FieldChangeResponse
	for _, change := range entry.Changes {
		changes = append(changes, dto.FieldChangeResponse{
			Field:    change.Field,
			OldValue: change.OldValue,
			NewValue: change.NewValue,
		})
	}

	return &dto.RoomTypeHistoryResponse{
		ID:           entry.ID,
		RoomTypeID:   entry.RoomTypeID,
		RoomTypeName: entry.RoomTypeName,
		Action:       string(entry.Action),
		Permanent:    entry.Permanent,
		Changes:      changes,
		Snapshot:     entry.Snapshot,
		PerformedBy:  entry.PerformedBy,
		CreatedAt:    entry.CreatedAt,
	}
}

func RoomTypeHistoriesToResponses(entries []entity.RoomTypeHistoryEntry) []dto.RoomTypeHistoryResponse {
	responses := make([]dto.RoomTypeHistoryResponse, len(entries))
	for i := range entries {
		responses[i] = *RoomTypeHistoryToResponse(&entries[i])
	}
	return responses
}
