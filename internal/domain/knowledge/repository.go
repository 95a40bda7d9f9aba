package knowledge

import "context"

type Repository interface {
	Save(ctx context.Context, article *Article) error
	Update(ctx context.Context, article *Article) error
	Delete(ctx context.Context, articleID uint) error
	GetByID(ctx context.Context, articleID uint) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter Filter) ([]*Article, int64, error)
	IncrementViewCount(ctx context.Context, articleID uint) error
}

type Filter struct {
	Category *string
	Tag      *string
	Search   string
	Page     int
	PageSize int
}
