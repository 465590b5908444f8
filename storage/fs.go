package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/nijaru/yt-kb/errors"
	"github.com/sirupsen/logrus"
)

const docExt = ".md"

type FileStore struct {
	root string
}

func NewFileStore(root string) (*FileStore, error) {
	const op = "FileStore.New"
	if root == "" {
		return nil, errors.InvalidInput(op, nil, "storage root is required")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, errors.StorageFailure(op, err, "Failed to create storage root")
	}
	return &FileStore{root: root}, nil
}

func (s *FileStore) Path(folder, key string) string {
	return filepath.Join(s.root, folder, key+docExt)
}

func (s *FileStore) Load(ctx context.Context, folder, key string) (string, error) {
	const op = "FileStore.Load"
	path := s.Path(folder, key)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFound(op, nil, "artifact not found: "+path)
		}
		logrus.WithError(err).WithField("path", path).Error("Failed to read artifact")
		return "", errors.StorageFailure(op, err, "Failed to read artifact")
	}
	return string(data), nil
}

// Save writes to a temp file in the target folder and renames it into place
// so readers never observe a partial document.
func (s *FileStore) Save(ctx context.Context, folder, key, doc string) error {
	const op = "FileStore.Save"
	path := s.Path(folder, key)
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.StorageFailure(op, err, "Failed to create folder")
	}

	tmp, err := os.CreateTemp(dir, "."+key+"-*.tmp")
	if err != nil {
		return errors.StorageFailure(op, err, "Failed to create temp file")
	}
	defer func() {
		if _, statErr := os.Stat(tmp.Name()); statErr == nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.WriteString(doc); err != nil {
		tmp.Close()
		return errors.StorageFailure(op, err, "Failed to write artifact")
	}
	if err := tmp.Close(); err != nil {
		return errors.StorageFailure(op, err, "Failed to close artifact")
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return errors.StorageFailure(op, err, "Failed to set artifact permissions")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.StorageFailure(op, err, "Failed to move artifact into place")
	}

	logrus.WithField("path", path).Debug("Saved artifact")
	return nil
}
