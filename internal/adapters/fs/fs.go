package fs

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// LocalFileSystem reads payloads from local paths. It handles every name
// that is not an http(s) URL.
type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Fetch reads the whole file into memory.
func (lfs *LocalFileSystem) Fetch(ctx context.Context, filePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", filePath)
	}

	return os.ReadFile(filePath)
}

func (lfs *LocalFileSystem) Handles(name string) bool {
	lower := strings.ToLower(name)
	return !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://")
}
