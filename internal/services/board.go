package services

import (
	"errors"

	"github.com/kanbanhq/kanban-api/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned by every lookup-by-id that matches no row.
var ErrNotFound = errors.New("not found")

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type BoardService struct {
	db *gorm.DB
}

func NewBoardService(db *gorm.DB) *BoardService {
	return &BoardService{db: db}
}

func (s *BoardService) Create(name string) (*models.Board, error) {
	board := models.Board{Name: name}
	if err := s.db.Create(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

func (s *BoardService) Get(id uint) (*models.Board, error) {
	var board models.Board
	if err := s.db.First(&board, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &board, nil
}

// List returns boards with optional case-sensitive substring match on name
// and offset/limit pagination.
func (s *BoardService) List(q string, offset, limit int) ([]models.Board, error) {
	boards := make([]models.Board, 0)
	tx := s.db.Offset(offset).Limit(limit)
	if q != "" {
		tx = tx.Where("name LIKE ?", "%"+q+"%")
	}
	if err := tx.Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// Update overwrites the name only when newName is non-empty; an empty value
// still refreshes updated_at.
func (s *BoardService) Update(id uint, newName string) (*models.Board, error) {
	var board models.Board
	if err := s.db.First(&board, id).Error; err != nil {
		return nil, notFound(err)
	}
	if newName != "" {
		board.Name = newName
	}
	if err := s.db.Save(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

func (s *BoardService) Delete(id uint) error {
	result := s.db.Delete(&models.Board{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetWithTasks loads the board and forces its task collection.
func (s *BoardService) GetWithTasks(id uint) (*models.Board, error) {
	var board models.Board
	if err := s.db.Preload("Tasks").First(&board, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &board, nil
}

// AddParticipant links a user to a board. Adding the same user twice is a
// no-op.
func (s *BoardService) AddParticipant(boardID, userID uint) error {
	participant := models.BoardParticipant{BoardID: boardID, UserID: userID}
	return s.db.Where(&participant).FirstOrCreate(&participant).Error
}

// ListParticipants returns the users linked to the board.
func (s *BoardService) ListParticipants(id uint) ([]models.User, error) {
	var board models.Board
	if err := s.db.Preload("Participants").First(&board, id).Error; err != nil {
		return nil, notFound(err)
	}
	if board.Participants == nil {
		return []models.User{}, nil
	}
	return board.Participants, nil
}

func (s *BoardService) RemoveParticipant(boardID, userID uint) error {
	result := s.db.Where("board_id = ? AND user_id = ?", boardID, userID).
		Delete(&models.BoardParticipant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
