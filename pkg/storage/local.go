package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"lifemate-backend/internal/domain"
)

// LocalPathPrefix is where the HTTP router serves files written by LocalStore.
const LocalPathPrefix = "/files"

// LocalStore keeps artifacts on the local filesystem; used in development.
type LocalStore struct {
	baseDir string
	baseURL string
}

func NewLocalStore(baseDir, publicBaseURL string) *LocalStore {
	return &LocalStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Dir is the root directory the router exposes under LocalPathPrefix.
func (s *LocalStore) Dir() string {
	return s.baseDir
}

func (s *LocalStore) Store(ctx context.Context, data []byte, folderKey, fileName string) (*domain.StoredObject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	storageID, err := newStorageID(folderKey, fileName)
	if err != nil {
		return nil, err
	}
	if err := checkPDF(data); err != nil {
		return nil, err
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(storageID))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("write artifact: %w", err)
	}

	return &domain.StoredObject{
		URL:       s.baseURL + LocalPathPrefix + "/" + storageID,
		StorageID: storageID,
		ByteSize:  int64(len(data)),
	}, nil
}

func (s *LocalStore) Delete(ctx context.Context, storageID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validStorageID(storageID) {
		return errInvalidKey
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(storageID)))
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ErrArtifactNotFound
	}
	return err
}

var _ domain.ArtifactStore = (*LocalStore)(nil)
