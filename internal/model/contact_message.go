package model

import "time"

// ContactMessage is a write-only record from the public contact form.
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nome" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Message   string    `json:"mensagem" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"data"`
}
