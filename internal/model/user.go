package model

import "time"

// User represents a registered account. The email is the unique lookup key;
// the password is only ever stored in hashed form.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"nome" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated principal bound to a session token.
// It carries the user id rather than just a display name, so two users
// sharing a name stay distinguishable.
type Identity struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"nome"`
}
