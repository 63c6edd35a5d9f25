package models

import "time"

// Episode is a single audio item of a show. Its access control is derived
// entirely from the parent show's ownership.
type Episode struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ShowID      string    `json:"show_id" gorm:"index;type:varchar(36);not null"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	AudioFile   string    `json:"audio_file" gorm:"type:varchar(64);not null"`
	Duration    *int      `json:"duration"` // seconds, not computed here
	CreatedAt   time.Time `json:"created_at"`
}

// EpisodeInput carries the client-supplied text fields of a new episode.
type EpisodeInput struct {
	Title       string `form:"title" validate:"required,max=255"`
	Description string `form:"description" validate:"required,max=5000"`
}
