package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"

	"butler-assistant/internal/record/repository"
)

const fileMode = 0o644

// implRepository stores each collection as an indented JSON array in its
// own file under dir. It is not safe for concurrent writers; the record
// store serializes access.
type implRepository struct {
	dir string
}

var _ repository.Repository = (*implRepository)(nil)

// New creates the data directory and initializes missing collection files to [].
func New(dir string) (*implRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", dir, err)
	}

	r := &implRepository{dir: dir}
	for _, c := range []string{
		repository.CollectionTasks,
		repository.CollectionAppointments,
		repository.CollectionMeetings,
	} {
		path := r.path(c)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat %q: %w", path, err)
		}
		if err := os.WriteFile(path, []byte("[]"), fileMode); err != nil {
			return nil, fmt.Errorf("initialize %q: %w", path, err)
		}
	}

	return r, nil
}

func (r *implRepository) path(collection string) string {
	return filepath.Join(r.dir, collection+".json")
}
