package services

import (
	"github.com/kanbanhq/kanban-api/internal/models"
	"gorm.io/gorm"
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

func (s *TaskService) Create(name, description, status string, boardID, authorID, assigneeID *uint) (*models.Task, error) {
	if status == "" {
		status = models.StatusTodo
	}
	task := models.Task{
		Name:        name,
		Description: description,
		Status:      status,
		BoardID:     boardID,
		AuthorID:    authorID,
		AssigneeID:  assigneeID,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Get(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &task, nil
}

// List returns tasks matching every supplied filter (conjunctive).
func (s *TaskService) List(boardID, authorID, assigneeID *uint, status string) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	tx := s.db
	if boardID != nil {
		tx = tx.Where("board_id = ?", *boardID)
	}
	if authorID != nil {
		tx = tx.Where("author_id = ?", *authorID)
	}
	if assigneeID != nil {
		tx = tx.Where("assignee_id = ?", *assigneeID)
	}
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	if err := tx.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update applies the partial-update policy: omitted fields and empty strings
// leave the stored value unchanged. The author is never modified.
func (s *TaskService) Update(id uint, req models.UpdateTaskRequest) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		return nil, notFound(err)
	}

	if req.Name != nil && *req.Name != "" {
		task.Name = *req.Name
	}
	if req.Description != nil && *req.Description != "" {
		task.Description = *req.Description
	}
	if req.Status != nil && *req.Status != "" {
		task.Status = *req.Status
	}
	if req.BoardID != nil {
		task.BoardID = req.BoardID
	}
	if req.AssigneeID != nil {
		task.AssigneeID = req.AssigneeID
	}

	if err := s.db.Save(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Delete(id uint) error {
	result := s.db.Delete(&models.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetWithAuthor loads the task and forces the author relation. A task with
// no author comes back unchanged.
func (s *TaskService) GetWithAuthor(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.Preload("Author").First(&task, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &task, nil
}

// GetWithBoard loads the task and forces the board relation.
func (s *TaskService) GetWithBoard(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.Preload("Board").First(&task, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &task, nil
}
