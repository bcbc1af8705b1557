package data

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pixaro/brand-social-bridge/internal/biz/repo"
)

// mediaRepo resolves image references produced by the upload collaborator to
// files under a fixed directory. References must not escape that directory.
type mediaRepo struct {
	baseDir string
}

// NewMediaRepo creates a local-disk media resolver rooted at baseDir.
func NewMediaRepo(baseDir string) repo.MediaRepo {
	return &mediaRepo{baseDir: baseDir}
}

func (r *mediaRepo) Resolve(ctx context.Context, imageRef string) ([]byte, error) {
	name := filepath.Base(filepath.Clean(imageRef))
	if name == "." || name == string(filepath.Separator) || strings.Contains(name, "..") {
		return nil, fmt.Errorf("invalid image reference: %q", imageRef)
	}

	data, err := os.ReadFile(filepath.Join(r.baseDir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read image %q: %w", name, err)
	}
	return data, nil
}
