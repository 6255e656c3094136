package journal

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/akeil/tripjournal/internal/logging"
)

// Cache stores rendered journals and artifacts by key.
type Cache interface {
	// Get opens the entry for key. Returns a NotFound error for a miss.
	Get(key string) (io.ReadCloser, error)
	// Put stores the data from r under key, replacing an existing entry.
	Put(key string, r io.Reader) error
	// Size returns the size of the entry in bytes.
	Size(key string) (int64, error)
	// Delete removes an entry.
	Delete(key string) error
}

type fsCache struct {
	dir string
	mx  sync.RWMutex
}

// NewFilesystemCache returns a Cache implementation that stores cached data
// in the given directory.
func NewFilesystemCache(dir string) Cache {
	return &fsCache{dir: dir}
}

func (f *fsCache) Get(key string) (io.ReadCloser, error) {
	logging.Debug("Cache get %q", key)
	f.mx.RLock()
	defer f.mx.RUnlock()

	r, err := os.Open(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("Cache miss %q", key)
			return nil, NewNotFound("no cache entry for %q", key)
		}
		logging.Warning("Cache error %q: %v", key, err)
		return nil, err
	}
	return r, nil
}

func (f *fsCache) Put(key string, r io.Reader) error {
	logging.Debug("Cache put %q", key)
	f.mx.Lock()
	defer f.mx.Unlock()

	err := os.MkdirAll(f.dir, 0755)
	if err != nil {
		logging.Warning("Failed to create cache directory %q: %v", f.dir, err)
		return err
	}

	// write to a temp file first so readers never see a partial journal
	dst := f.path(key)
	tmp, err := os.CreateTemp(f.dir, filepath.Base(dst)+".*.tmp")
	if err != nil {
		return err
	}
	_, err = io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	err = tmp.Close()
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), dst)
}

func (f *fsCache) Size(key string) (int64, error) {
	f.mx.RLock()
	defer f.mx.RUnlock()

	info, err := os.Stat(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, NewNotFound("no cache entry for %q", key)
		}
		return 0, err
	}
	return info.Size(), nil
}

func (f *fsCache) Delete(key string) error {
	logging.Debug("Cache delete %q", key)
	f.mx.Lock()
	defer f.mx.Unlock()
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (f *fsCache) path(key string) string {
	return filepath.Join(f.dir, filepath.Base(key))
}
