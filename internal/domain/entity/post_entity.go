package entity

import (
	"strings"
	"time"
)

// DefaultSummaryLength is used by Summary when no positive length is given.
const DefaultSummaryLength = 100

const summaryEllipsis = "..."

// Post is a piece of content owned by a user. The owner reference is not
// checked here; referential integrity belongs to persistence.
type Post struct {
	id        string
	title     string
	content   *string
	userID    string
	createdAt time.Time
	updatedAt time.Time
}

type PostProps struct {
	ID        string
	Title     string
	Content   *string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostUpdate lists the fields to change. Content is applied only when
// SetContent is true, in which case a nil Content clears it.
type PostUpdate struct {
	Title      *string
	Content    *string
	SetContent bool
}

type PostRecord struct {
	ID        string
	Title     string
	Content   *string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPost builds a post from props without validating them; use Publish or
// Update to change fields under the title rule.
func NewPost(p PostProps) *Post {
	now := time.Now().UTC()
	post := &Post{
		id:        p.ID,
		title:     p.Title,
		content:   cloneString(p.Content),
		userID:    p.UserID,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}
	if post.id == "" {
		post.id = NewID()
	}
	if post.createdAt.IsZero() {
		post.createdAt = now
	}
	if post.updatedAt.IsZero() {
		post.updatedAt = now
	}
	return post
}

func PostFromPersistence(r PostRecord) *Post {
	return NewPost(PostProps(r))
}

func (p *Post) ID() string           { return p.id }
func (p *Post) Title() string        { return p.title }
func (p *Post) UserID() string       { return p.userID }
func (p *Post) CreatedAt() time.Time { return p.createdAt }
func (p *Post) UpdatedAt() time.Time { return p.updatedAt }

// Content returns a copy of the content, or nil when there is none.
func (p *Post) Content() *string { return cloneString(p.content) }

// Publish sets title and content together.
func (p *Post) Publish(title, content string) error {
	t := strings.TrimSpace(title)
	if t == "" {
		return ErrEmptyTitle
	}
	p.title = t
	p.content = &content
	p.updatedAt = time.Now().UTC()
	return nil
}

// Update applies the provided fields. Nothing is changed when validation fails.
func (p *Post) Update(u PostUpdate) error {
	title := p.title
	if u.Title != nil {
		title = strings.TrimSpace(*u.Title)
		if title == "" {
			return ErrEmptyTitle
		}
	}
	p.title = title
	if u.SetContent {
		p.content = cloneString(u.Content)
	}
	p.updatedAt = time.Now().UTC()
	return nil
}

// Summary returns the content cut to maxLength characters with a trailing
// ellipsis when it was longer. Posts without content summarize to "".
func (p *Post) Summary(maxLength int) string {
	if p.content == nil || *p.content == "" {
		return ""
	}
	if maxLength <= 0 {
		maxLength = DefaultSummaryLength
	}
	r := []rune(*p.content)
	if len(r) <= maxLength {
		return *p.content
	}
	return string(r[:maxLength]) + summaryEllipsis
}

func (p *Post) Equals(other *Post) bool {
	if p == nil || other == nil {
		return false
	}
	return p.id == other.id
}

func (p *Post) ToPersistence() PostRecord {
	return PostRecord{
		ID:        p.id,
		Title:     p.title,
		Content:   cloneString(p.content),
		UserID:    p.userID,
		CreatedAt: p.createdAt,
		UpdatedAt: p.updatedAt,
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
