// Package catalog owns the application state: the student profile and the
// deduplicated scholarship catalog. All mutation goes through the Store,
// which persists after each successful change; the matching engine stays a
// set of pure functions over snapshots taken from here.
package catalog

import (
	"log"
	"sync"

	"github.com/mvaldez/scholarmatch/internal/models"
)

type Store struct {
	mu           sync.RWMutex
	profile      models.StudentProfile
	scholarships []models.Scholarship
	persister    Persister
}

// NewStore loads both documents through the persister, falling back to the
// default profile and the seed catalog on anything unreadable. A load failure
// is logged, never fatal.
func NewStore(p Persister) *Store {
	s := &Store{persister: p}

	profile, err := p.LoadProfile()
	if err != nil {
		log.Printf("No usable stored profile, starting fresh: %v", err)
		profile = models.DefaultProfile()
	}
	s.profile = profile

	scholarships, err := p.LoadCatalog()
	if err != nil || len(scholarships) == 0 {
		if err != nil {
			log.Printf("No usable stored catalog, using seed data: %v", err)
		}
		scholarships = Seed()
	}
	for i := range scholarships {
		models.Normalize(&scholarships[i])
	}
	s.scholarships = dedupe(scholarships)

	return s
}

// Profile returns the current student profile.
func (s *Store) Profile() models.StudentProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SetProfile replaces the whole profile. Saves are whole-object by contract;
// there is no partial patch path.
func (s *Store) SetProfile(p models.StudentProfile) {
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()

	if err := s.persister.SaveProfile(p); err != nil {
		log.Printf("Failed to persist profile: %v", err)
	}
}

// ResetProfile restores the all-empty default profile.
func (s *Store) ResetProfile() {
	s.SetProfile(models.DefaultProfile())
}

// Scholarships returns a snapshot copy of the catalog.
func (s *Store) Scholarships() []models.Scholarship {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Scholarship, len(s.scholarships))
	copy(out, s.scholarships)
	return out
}

// Ingest appends the candidates that are not already in the catalog and
// returns how many were added. A candidate is a duplicate when its ID or its
// title matches any existing entry; duplicates are silently skipped, and the
// caller distinguishes "all duplicates" from "empty batch" via len(batch).
func (s *Store) Ingest(batch []models.Scholarship) int {
	if len(batch) == 0 {
		return 0
	}

	s.mu.Lock()
	ids := make(map[string]struct{}, len(s.scholarships))
	titles := make(map[string]struct{}, len(s.scholarships))
	for _, existing := range s.scholarships {
		ids[existing.ID] = struct{}{}
		titles[existing.Title] = struct{}{}
	}

	added := 0
	for _, candidate := range batch {
		models.Normalize(&candidate)
		if _, dup := ids[candidate.ID]; dup {
			continue
		}
		if _, dup := titles[candidate.Title]; dup {
			continue
		}
		ids[candidate.ID] = struct{}{}
		titles[candidate.Title] = struct{}{}
		s.scholarships = append(s.scholarships, candidate)
		added++
	}
	snapshot := make([]models.Scholarship, len(s.scholarships))
	copy(snapshot, s.scholarships)
	s.mu.Unlock()

	if added > 0 {
		if err := s.persister.SaveCatalog(snapshot); err != nil {
			log.Printf("Failed to persist catalog: %v", err)
		}
	}
	return added
}

// dedupe enforces the catalog invariant on load: no two entries share an ID
// or a title. First occurrence wins, order preserved.
func dedupe(scholarships []models.Scholarship) []models.Scholarship {
	ids := make(map[string]struct{}, len(scholarships))
	titles := make(map[string]struct{}, len(scholarships))
	out := scholarships[:0]
	for _, s := range scholarships {
		if _, dup := ids[s.ID]; dup {
			continue
		}
		if _, dup := titles[s.Title]; dup {
			continue
		}
		ids[s.ID] = struct{}{}
		titles[s.Title] = struct{}{}
		out = append(out, s)
	}
	return out
}
