package knowledge

import (
	"fmt"
	"strings"
	"time"

	"fieldserve/internal/shared/biztime"
)

// Article is a knowledge base entry written by technicians. Body is stored
// as markdown; rendering happens at the interface layer.
type Article struct {
	id        uint
	title     string
	slug      string
	body      string
	category  string
	tags      []string
	authorID  uint
	viewCount int
	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewArticle(title, slug, body, category string, tags []string, authorID uint) (*Article, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(slug) == 0 {
		return nil, fmt.Errorf("slug is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("body is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	now := biztime.NowUTC()
	return &Article{
		title:     title,
		slug:      slug,
		body:      body,
		category:  category,
		tags:      normalizeTags(tags),
		authorID:  authorID,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructArticle(
	id uint,
	title string,
	slug string,
	body string,
	category string,
	tags []string,
	authorID uint,
	viewCount int,
	version int,
	createdAt, updatedAt time.Time,
) (*Article, error) {
	if id == 0 {
		return nil, fmt.Errorf("article ID cannot be zero")
	}

	return &Article{
		id:        id,
		title:     title,
		slug:      slug,
		body:      body,
		category:  category,
		tags:      tags,
		authorID:  authorID,
		viewCount: viewCount,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

func (a *Article) ID() uint {
	return a.id
}

func (a *Article) Title() string {
	return a.title
}

func (a *Article) Slug() string {
	return a.slug
}

func (a *Article) Body() string {
	return a.body
}

func (a *Article) Category() string {
	return a.category
}

func (a *Article) Tags() []string {
	return a.tags
}

func (a *Article) AuthorID() uint {
	return a.authorID
}

func (a *Article) ViewCount() int {
	return a.viewCount
}

func (a *Article) Version() int {
	return a.version
}

func (a *Article) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Article) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Article) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("article ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("article ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Article) UpdateContent(title, body, category string, tags []string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(body) == 0 {
		return fmt.Errorf("body is required")
	}
	a.title = title
	a.body = body
	a.category = category
	a.tags = normalizeTags(tags)
	a.version++
	a.updatedAt = biztime.NowUTC()
	return nil
}

func (a *Article) RecordView() {
	a.viewCount++
}
