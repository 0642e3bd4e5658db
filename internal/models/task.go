package models

import (
	"time"
)

// Task status values. Transitions are unconstrained: any status may move to
// any other via update.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"index;not null"`
	Description string    `json:"description" gorm:"default:''"`
	Status      string    `json:"status" gorm:"not null;default:'todo'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	AuthorID   *uint `json:"author_id" gorm:"index"`
	AssigneeID *uint `json:"assignee_id" gorm:"index"`
	BoardID    *uint `json:"board_id" gorm:"index"`

	// Relations (for preloading)
	Author   *User  `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Assignee *User  `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	Board    *Board `json:"board,omitempty" gorm:"foreignKey:BoardID"`
}

// Task DTOs
type CreateTaskRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	BoardID     *uint  `json:"board_id"`
	AuthorID    *uint  `json:"author_id"`
	AssigneeID  *uint  `json:"assignee_id"`
}

// UpdateTaskRequest deliberately has no author_id: the author is fixed at
// creation and updates never touch it. Omitted fields and empty strings are
// both treated as "leave unchanged".
type UpdateTaskRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	BoardID     *uint   `json:"board_id"`
	AssigneeID  *uint   `json:"assignee_id"`
}
