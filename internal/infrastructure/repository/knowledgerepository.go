package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldserve/internal/domain/knowledge"
	"fieldserve/internal/infrastructure/persistence/mappers"
	"fieldserve/internal/infrastructure/persistence/models"
	"fieldserve/internal/shared/db"
)

type KnowledgeRepository struct {
	db     *gorm.DB
	mapper mappers.KnowledgeMapper
}

func NewKnowledgeRepository(database *gorm.DB) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     database,
		mapper: mappers.NewKnowledgeMapper(),
	}
}

func (r *KnowledgeRepository) Save(ctx context.Context, article *knowledge.Article) error {
	model, err := r.mapper.ToModel(article)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save article: %w", err)
	}

	return article.SetID(model.ID)
}

func (r *KnowledgeRepository) Update(ctx context.Context, article *knowledge.Article) error {
	model, err := r.mapper.ToModel(article)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.ArticleModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update article: %w", result.Error)
	}

	return nil
}

func (r *KnowledgeRepository) Delete(ctx context.Context, articleID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ArticleModel{}, articleID)

	if result.Error != nil {
		return fmt.Errorf("failed to delete article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("article not found")
	}

	return nil
}

func (r *KnowledgeRepository) GetByID(ctx context.Context, articleID uint) (*knowledge.Article, error) {
	var model models.ArticleModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, articleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("article not found")
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *KnowledgeRepository) GetBySlug(ctx context.Context, slug string) (*knowledge.Article, error) {
	var model models.ArticleModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("article not found")
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *KnowledgeRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Model(&models.ArticleModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return count > 0, nil
}

func (r *KnowledgeRepository) List(ctx context.Context, filter knowledge.Filter) ([]*knowledge.Article, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ArticleModel{})

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Tag != nil {
		// tags is a JSON array of strings
		query = query.Where("JSON_CONTAINS(tags, JSON_QUOTE(?))", *filter.Tag)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR body LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	query = query.Order("updated_at DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var articleModels []models.ArticleModel
	if err := query.Find(&articleModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	articles := make([]*knowledge.Article, len(articleModels))
	for i := range articleModels {
		a, err := r.mapper.ToDomain(&articleModels[i])
		if err != nil {
			return nil, 0, err
		}
		articles[i] = a
	}

	return articles, total, nil
}

func (r *KnowledgeRepository) IncrementViewCount(ctx context.Context, articleID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.ArticleModel{}).
		Where("id = ?", articleID).
		Update("view_count", gorm.Expr("view_count + 1"))

	if result.Error != nil {
		return fmt.Errorf("failed to increment view count: %w", result.Error)
	}

	return nil
}
