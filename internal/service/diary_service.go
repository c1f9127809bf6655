package service

import (
	"context"
	"fmt"
	"time"

	apperrors "vespera/internal/errors"
	"vespera/internal/model"
	"vespera/internal/repository"
)

// DiaryService handles diary entry creation and listing.
type DiaryService interface {
	CreateEntry(ctx context.Context, draft model.EntryDraft) (*model.DiaryEntry, error)
	ListEntries(ctx context.Context) ([]model.EntryView, error)
}

type diaryService struct {
	entries repository.DiaryRepository
}

// NewDiaryService creates a new diary service.
func NewDiaryService(entries repository.DiaryRepository) DiaryService {
	return &diaryService{entries: entries}
}

// CreateEntry validates the draft and inserts the entry. Date, emoji and
// title are required; description defaults to the empty string. Nothing is
// written until the draft passes validation.
func (s *diaryService) CreateEntry(ctx context.Context, draft model.EntryDraft) (*model.DiaryEntry, error) {
	if draft.Date == "" || draft.Emoji == "" || draft.Title == "" {
		return nil, apperrors.ErrMissingEntryFields
	}

	date, err := parseEntryDate(draft.Date)
	if err != nil {
		return nil, apperrors.ErrInvalidEntryDate
	}

	entry := &model.DiaryEntry{
		Date:        date,
		Emoji:       draft.Emoji,
		Title:       draft.Title,
		Description: draft.Description,
		CreatedAt:   time.Now(),
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create diary entry: %w", err)
	}

	return entry, nil
}

// ListEntries returns every entry ordered by date descending, rendered for
// transport. The list is recomputed from the store on each call.
func (s *diaryService) ListEntries(ctx context.Context) ([]model.EntryView, error) {
	entries, err := s.entries.ListByDateDesc(ctx)
	if err != nil {
		return nil, fmt.Errorf("list diary entries: %w", err)
	}

	views := make([]model.EntryView, 0, len(entries))
	for i := range entries {
		views = append(views, entries[i].View())
	}
	return views, nil
}

// parseEntryDate accepts the calendar-date form, falling back to RFC 3339
// for clients that post full timestamps. Only the date part is kept.
func parseEntryDate(value string) (time.Time, error) {
	if t, err := time.Parse(model.DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
