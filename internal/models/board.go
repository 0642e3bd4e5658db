package models

import (
	"time"
)

type Board struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations (for preloading)
	Tasks        []Task `json:"tasks,omitempty" gorm:"foreignKey:BoardID"`
	Participants []User `json:"participants,omitempty" gorm:"many2many:board_participants"`
}

// Board DTOs
type CreateBoardRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateBoardRequest struct {
	Name *string `json:"name"`
}

type AddParticipantRequest struct {
	UserID uint `json:"user_id" validate:"required"`
}
