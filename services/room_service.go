package services

import "github.com/jvrm/bilhetinho-api/models"

// RoomService handles business logic for rooms and their tables
type RoomService struct {
	repo RoomRepository
}

func NewRoomService(repo RoomRepository) *RoomService {
	return &RoomService{repo: repo}
}

// ActiveRoom returns the single room currently flagged active. No active
// room is a configuration problem, surfaced as ErrRoomNotFound.
func (rs *RoomService) ActiveRoom() (*models.Room, error) {
	room, err := rs.repo.GetActiveRoom()
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// ListTables returns the room's tables ordered by number. Listing tables
// of a closed room fails so clients stop offering destinations after the
// event ends.
func (rs *RoomService) ListTables(roomID string) ([]models.Table, error) {
	room, err := rs.repo.GetRoom(roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if !room.IsActive {
		return nil, ErrRoomClosed
	}

	return rs.repo.GetTablesByRoom(roomID)
}
