package models

// BoardParticipant is the join table between boards and users. Composite
// primary key, no extra attributes.
type BoardParticipant struct {
	BoardID uint `json:"board_id" gorm:"primaryKey"`
	UserID  uint `json:"user_id" gorm:"primaryKey"`
}
