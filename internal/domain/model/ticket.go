//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/target/ticketdesk-api/internal/errors"
)

const maxTicketTitleLen = 255

// Ticket is a demo work item. IDs are slot indexes assigned at creation and never reused.
type Ticket struct {
	ID        uint64 `json:"id"    db:"id"`
	CreatorID uint64 `json:"cid"   db:"creator_id"`
	Title     string `json:"title" db:"title"`
}

// TicketForCreate is the client payload for creating a ticket.
type TicketForCreate struct {
	Title string `json:"title"`
}

// Validate checks the payload. Titles are required and bounded.
func (t TicketForCreate) Validate() error {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		return apperrors.ValidationField("title", "title is required and cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxTicketTitleLen {
		return apperrors.ValidationField("title", "title cannot exceed 255 characters")
	}
	return nil
}
