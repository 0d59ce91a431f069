package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/jvrm/bilhetinho-api/models"
)

// UserService handles business logic for ephemeral users
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create binds a new user to a table. The table's room must exist and be
// active; users cannot join a closed event. An empty nickname falls back
// to the anonymous default.
func (us *UserService) Create(nickname, tableID string) (*models.User, error) {
	if nickname == "" {
		nickname = models.DefaultNickname
	}

	table, err := us.repo.GetTable(tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrTableNotFound
	}

	room, err := us.repo.GetRoom(table.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil || !room.IsActive {
		return nil, ErrRoomClosed
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Nickname:  nickname,
		TableID:   table.ID,
		RoomID:    room.ID,
		CreatedAt: time.Now().UTC(),
	}

	if err := us.repo.CreateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (us *UserService) Get(userID string) (*models.User, error) {
	user, err := us.repo.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListByTable returns all users seated at a table.
func (us *UserService) ListByTable(tableID string) ([]models.User, error) {
	table, err := us.repo.GetTable(tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrTableNotFound
	}

	return us.repo.GetUsersByTable(tableID)
}
