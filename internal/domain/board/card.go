// Package board contains the Kanban board entities: columns and the
// job-application cards they hold. A card belongs to exactly one column at a
// time; its position within the column is established by an integer order
// value, never by a display index.
package board

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"huntboard/internal/domain"
)

// maxNotesLen caps free-form notes to keep documents small.
const maxNotesLen = 4000

// Card represents a single job application tracked on the board.
//
// Order is the sort key within the card's column: iterating a column's cards
// sorted by Order ascending yields the user-visible sequence. Within a
// column all cards carry pairwise-distinct Order values.
type Card struct {
	ID         string
	ColumnID   string
	Company    string
	Role       string
	Notes      string
	PostingURL string
	Order      int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks business rules for the Card entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (c *Card) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Company) == "" {
		fields["company"] = domain.MsgRequired
	}
	if strings.TrimSpace(c.Role) == "" {
		fields["role"] = domain.MsgRequired
	}
	if len(c.Notes) > maxNotesLen {
		fields["notes"] = fmt.Sprintf("must be at most %d characters, got %d", maxNotesLen, len(c.Notes))
	}
	if c.PostingURL != "" {
		if u, err := url.Parse(c.PostingURL); err != nil || u.Scheme == "" || u.Host == "" {
			fields["posting_url"] = fmt.Sprintf("must be an absolute URL, got %q", c.PostingURL)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
