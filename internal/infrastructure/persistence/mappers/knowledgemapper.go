package mappers

import (
	"encoding/json"
	"fmt"

	"fieldserve/internal/domain/knowledge"
	"fieldserve/internal/infrastructure/persistence/models"
)

type KnowledgeMapper interface {
	ToModel(a *knowledge.Article) (*models.ArticleModel, error)
	ToDomain(model *models.ArticleModel) (*knowledge.Article, error)
}

type KnowledgeMapperImpl struct{}

func NewKnowledgeMapper() KnowledgeMapper {
	return &KnowledgeMapperImpl{}
}

func (m *KnowledgeMapperImpl) ToModel(a *knowledge.Article) (*models.ArticleModel, error) {
	tagsJSON, err := json.Marshal(a.Tags())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal article tags: %w", err)
	}

	return &models.ArticleModel{
		ID:        a.ID(),
		Title:     a.Title(),
		Slug:      a.Slug(),
		Body:      a.Body(),
		Category:  a.Category(),
		Tags:      tagsJSON,
		AuthorID:  a.AuthorID(),
		ViewCount: a.ViewCount(),
		Version:   a.Version(),
		CreatedAt: a.CreatedAt().UnixMilli(),
		UpdatedAt: a.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *KnowledgeMapperImpl) ToDomain(model *models.ArticleModel) (*knowledge.Article, error) {
	var tags []string
	if len(model.Tags) > 0 {
		if err := json.Unmarshal(model.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal article tags (id=%d): %w", model.ID, err)
		}
	}

	return knowledge.ReconstructArticle(
		model.ID,
		model.Title,
		model.Slug,
		model.Body,
		model.Category,
		tags,
		model.AuthorID,
		model.ViewCount,
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
