package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"fieldserve/internal/domain/knowledge"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

// MarkdownRenderer converts an article body to sanitized HTML. The
// goldmark plus bluemonday implementation lives in infrastructure.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

type CreateArticleCommand struct {
	Title    string
	Body     string
	Category string
	Tags     []string
	AuthorID uint
}

type UpdateArticleCommand struct {
	ArticleID uint
	Title     string
	Body      string
	Category  string
	Tags      []string
}

type ArticleResult struct {
	ID        uint      `json:"article_id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Body      string    `json:"body,omitempty"`
	HTML      string    `json:"html,omitempty"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	AuthorID  uint      `json:"author_id"`
	ViewCount int       `json:"view_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListArticlesQuery struct {
	Category string
	Tag      string
	Search   string
	Page     int
	PageSize int
}

type ListArticlesResult struct {
	Articles []ArticleResult `json:"articles"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// ArticleService manages the knowledge base that technicians consult in
// the field.
type ArticleService struct {
	repo     knowledge.Repository
	renderer MarkdownRenderer
	logger   logger.Interface
}

func NewArticleService(repo knowledge.Repository, renderer MarkdownRenderer, logger logger.Interface) *ArticleService {
	return &ArticleService{
		repo:     repo,
		renderer: renderer,
		logger:   logger,
	}
}

func (s *ArticleService) Create(ctx context.Context, cmd CreateArticleCommand) (*ArticleResult, error) {
	s.logger.Infow("creating knowledge article", "title", cmd.Title, "author_id", cmd.AuthorID)

	slug, err := s.uniqueSlug(ctx, cmd.Title)
	if err != nil {
		return nil, err
	}

	article, err := knowledge.NewArticle(cmd.Title, slug, cmd.Body, cmd.Category, cmd.Tags, cmd.AuthorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Save(ctx, article); err != nil {
		s.logger.Errorw("failed to save article", "error", err)
		return nil, err
	}

	return s.toResult(article, false), nil
}

func (s *ArticleService) Update(ctx context.Context, cmd UpdateArticleCommand) (*ArticleResult, error) {
	if cmd.ArticleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}

	article, err := s.repo.GetByID(ctx, cmd.ArticleID)
	if err != nil {
		return nil, errors.NewNotFoundError("article not found")
	}

	if err := article.UpdateContent(cmd.Title, cmd.Body, cmd.Category, cmd.Tags); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, article); err != nil {
		s.logger.Errorw("failed to update article", "error", err, "article_id", cmd.ArticleID)
		return nil, err
	}

	return s.toResult(article, false), nil
}

// GetBySlug renders the article body and counts the view.
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (*ArticleResult, error) {
	if len(slug) == 0 {
		return nil, errors.NewValidationError("slug is required")
	}

	article, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errors.NewNotFoundError("article not found")
	}

	if err := s.repo.IncrementViewCount(ctx, article.ID()); err != nil {
		s.logger.Warnw("failed to increment view count", "error", err, "article_id", article.ID())
	}

	return s.toResult(article, true), nil
}

func (s *ArticleService) List(ctx context.Context, query ListArticlesQuery) (*ListArticlesResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := knowledge.Filter{
		Search:   query.Search,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
	if len(query.Category) > 0 {
		filter.Category = &query.Category
	}
	if len(query.Tag) > 0 {
		filter.Tag = &query.Tag
	}

	articles, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Errorw("failed to list articles", "error", err)
		return nil, err
	}

	results := make([]ArticleResult, 0, len(articles))
	for _, article := range articles {
		result := s.toResult(article, false)
		result.Body = ""
		results = append(results, *result)
	}

	return &ListArticlesResult{
		Articles: results,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

func (s *ArticleService) Delete(ctx context.Context, articleID uint) error {
	if articleID == 0 {
		return errors.NewValidationError("article ID is required")
	}
	return s.repo.Delete(ctx, articleID)
}

func (s *ArticleService) toResult(article *knowledge.Article, render bool) *ArticleResult {
	result := &ArticleResult{
		ID:        article.ID(),
		Title:     article.Title(),
		Slug:      article.Slug(),
		Body:      article.Body(),
		Category:  article.Category(),
		Tags:      article.Tags(),
		AuthorID:  article.AuthorID(),
		ViewCount: article.ViewCount(),
		CreatedAt: article.CreatedAt(),
		UpdatedAt: article.UpdatedAt(),
	}
	if render && s.renderer != nil {
		html, err := s.renderer.Render(article.Body())
		if err != nil {
			s.logger.Warnw("failed to render article body", "error", err, "article_id", article.ID())
		} else {
			result.HTML = html
		}
	}
	return result
}

// uniqueSlug derives a URL slug from the title, suffixing a counter when
// the slug is taken.
func (s *ArticleService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := Slugify(title)
	if len(base) == 0 {
		return "", errors.NewValidationError("title does not produce a valid slug")
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := s.repo.ExistsBySlug(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
		if i > 50 {
			return "", errors.NewConflictError("could not derive a unique slug")
		}
	}
}

// Slugify lowercases, strips diacritics and replaces runs of
// non-alphanumerics with single hyphens.
func Slugify(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, title)
	if err != nil {
		normalized = title
	}

	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(normalized) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
