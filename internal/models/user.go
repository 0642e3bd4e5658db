package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User DTOs
type CreateUserRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateUserRequest struct {
	Name *string `json:"name"`
}

// UserTasks is the combined response for GET /users/:id/tasks: tasks the
// user authored and tasks currently assigned to them.
type UserTasks struct {
	Authored []Task `json:"authored"`
	Assigned []Task `json:"assigned"`
}
