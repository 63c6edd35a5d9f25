package models

import "time"

// Show is a podcast owned by the podcaster who created it.
type Show struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatorID   string    `json:"creator_id" gorm:"index;type:varchar(36);not null"`
	CoverImage  *string   `json:"cover_image"`
	Category    string    `json:"category" gorm:"type:varchar(100)"`
	CreatedAt   time.Time `json:"created_at"`
}

// ShowInput carries the client-supplied fields of a new show.
type ShowInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=5000"`
	Category    string `json:"category" validate:"required,max=100"`
}
