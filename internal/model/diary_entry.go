package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the calendar-date form diary dates are accepted and
// rendered in on the wire.
const DateLayout = "2006-01-02"

// DiaryEntry represents a single diary record. Entries are immutable once
// created: there are no update or delete operations on this collection.
type DiaryEntry struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Date        time.Time `json:"data" gorm:"type:date;not null;index"`
	Emoji       string    `json:"emoji" gorm:"size:16;not null"`
	Title       string    `json:"titulo" gorm:"size:255;not null"`
	Description string    `json:"descricao" gorm:"type:text"`
	CreatedAt   time.Time `json:"dataCriacao"`
}

// BeforeCreate sets UUID before creating the record.
func (e *DiaryEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// EntryDraft holds the caller-supplied fields for a new diary entry before
// the server stamps the identifier and creation time.
type EntryDraft struct {
	Date        string
	Emoji       string
	Title       string
	Description string
}

// EntryView is the transport shape of a diary entry: identifier rendered as
// a string and the entry date rendered as a calendar-date string with the
// time of day stripped.
type EntryView struct {
	ID          string    `json:"id"`
	Date        string    `json:"data"`
	Emoji       string    `json:"emoji"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	CreatedAt   time.Time `json:"dataCriacao"`
}

// View renders an entry for transport.
func (e *DiaryEntry) View() EntryView {
	return EntryView{
		ID:          e.ID.String(),
		Date:        e.Date.Format(DateLayout),
		Emoji:       e.Emoji,
		Title:       e.Title,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}
