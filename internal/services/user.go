package services

import (
	"github.com/kanbanhq/kanban-api/internal/models"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Create(name string) (*models.User, error) {
	user := models.User{Name: name}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *UserService) List(q string, offset, limit int) ([]models.User, error) {
	users := make([]models.User, 0)
	tx := s.db.Offset(offset).Limit(limit)
	if q != "" {
		tx = tx.Where("name LIKE ?", "%"+q+"%")
	}
	if err := tx.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Update(id uint, newName string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	if newName != "" {
		user.Name = newName
	}
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Delete(id uint) error {
	result := s.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAuthoredTasks returns tasks where the user is the author. Fails with
// ErrNotFound when the user itself does not exist.
func (s *UserService) ListAuthoredTasks(id uint) ([]models.Task, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	tasks := make([]models.Task, 0)
	if err := s.db.Where("author_id = ?", id).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListAssignedTasks returns tasks where the user is the current assignee.
func (s *UserService) ListAssignedTasks(id uint) ([]models.Task, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	tasks := make([]models.Task, 0)
	if err := s.db.Where("assignee_id = ?", id).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListTasksCombined returns authored and assigned tasks in one response.
func (s *UserService) ListTasksCombined(id uint) (*models.UserTasks, error) {
	authored, err := s.ListAuthoredTasks(id)
	if err != nil {
		return nil, err
	}
	assigned, err := s.ListAssignedTasks(id)
	if err != nil {
		return nil, err
	}
	return &models.UserTasks{Authored: authored, Assigned: assigned}, nil
}
