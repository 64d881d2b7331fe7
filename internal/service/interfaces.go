package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"liferay2wp/internal/domain"
)

type ArticleSource interface {
	ScanArticles(ctx context.Context, fn func(domain.Article) error) error
}

type FolderSource interface {
	Folders(ctx context.Context) (map[int64]domain.Folder, error)
}

type UserSource interface {
	User(ctx context.Context, userID int64) (domain.User, error)
}

type TemplateSource interface {
	Template(ctx context.Context, templateID string) (*domain.Template, error)
}

type MediaMigrator interface {
	EnsureUploaded(ctx context.Context, urls []string) (map[string]domain.MediaRef, []int)
	RewriteLinks(ctx context.Context, html, sourceBaseURL string) (string, []int)
}

type Destination interface {
	CreatePost(ctx context.Context, collection string, post domain.Post, extraTaxonomies map[string][]int) (domain.PostRef, error)
	EnsureTerm(ctx context.Context, taxonomy, name string) (int, error)
	EnsureUser(ctx context.Context, username, email, displayName, role string) (int, error)
	ExistsBySlug(ctx context.Context, collection, slug string) (bool, error)
}

type StateStore interface {
	Load(ctx context.Context) (*domain.MigrationState, error)
	Save(ctx context.Context, st *domain.MigrationState) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.MigrationEvent) error
	Close() error
}
