package repo

import "context"

// MediaRepo resolves an uploaded-image reference (from the external
// file-storage collaborator) to local bytes.
type MediaRepo interface {
	Resolve(ctx context.Context, imageRef string) ([]byte, error)
}
