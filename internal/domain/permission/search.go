package permission

import "context"

// SearchIndex projects grants into the secondary index. It is not foreign-keyed
// to the store and can drift when a projection step fails.
type SearchIndex interface {
	// EnsureIndex creates the index with its mapping if it does not exist.
	EnsureIndex(ctx context.Context) error
	// IndexPermission creates or overwrites the document at the grant's DocumentID.
	IndexPermission(ctx context.Context, p *Permission) error
	// UpdatePermission merges into an existing document and fails when it is absent.
	UpdatePermission(ctx context.Context, p *Permission) error
	ListAll(ctx context.Context) ([]IndexedPermission, error)
}
