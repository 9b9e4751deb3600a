package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	Search(ctx context.Context, query string) ([]Team, error)
	GetBySlug(ctx context.Context, slug string) (Team, bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Insert(ctx context.Context, item Team) (Team, error)
	InsertMany(ctx context.Context, items []Team) []Team
	Update(ctx context.Context, slug string, patch Patch) (Team, error)
	UpdateSlug(ctx context.Context, id int64, slug string) error
	Delete(ctx context.Context, slug string) error
}
