package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/mvaldez/scholarmatch/internal/models"
)

const (
	profileFile = "profile.json"
	catalogFile = "scholarships.json"
	lockFile    = ".scholarmatch.lock"
)

// Persister is the persistence boundary: two independently stored JSON
// documents, one for the profile and one for the catalog. Load errors mean
// "nothing usable stored"; the store falls back to defaults and never
// surfaces them to the user.
type Persister interface {
	LoadProfile() (models.StudentProfile, error)
	SaveProfile(models.StudentProfile) error
	LoadCatalog() ([]models.Scholarship, error)
	SaveCatalog([]models.Scholarship) error
}

// FilePersister stores both documents in a single data directory, guarded by
// a file lock so a second engine process cannot interleave writes.
type FilePersister struct {
	dir  string
	lock *flock.Flock
}

func NewFilePersister(dir string) (*FilePersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FilePersister{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, lockFile)),
	}, nil
}

func (p *FilePersister) LoadProfile() (models.StudentProfile, error) {
	var profile models.StudentProfile
	err := p.load(profileFile, &profile)
	return profile, err
}

func (p *FilePersister) SaveProfile(profile models.StudentProfile) error {
	return p.save(profileFile, profile)
}

func (p *FilePersister) LoadCatalog() ([]models.Scholarship, error) {
	var scholarships []models.Scholarship
	if err := p.load(catalogFile, &scholarships); err != nil {
		return nil, err
	}
	return scholarships, nil
}

func (p *FilePersister) SaveCatalog(scholarships []models.Scholarship) error {
	return p.save(catalogFile, scholarships)
}

func (p *FilePersister) load(name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(p.dir, name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// save writes the document to a temp file and renames it into place, under
// the directory lock, so readers never observe a partial document.
func (p *FilePersister) save(name string, v interface{}) error {
	if err := p.lock.Lock(); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer p.lock.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	path := filepath.Join(p.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
