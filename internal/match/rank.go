package match

import (
	"sort"
	"time"

	"github.com/mvaldez/scholarmatch/internal/models"
)

// Ranked pairs a scholarship with its computed match score.
type Ranked struct {
	models.Scholarship
	Score int `json:"matchScore"`
}

// Rank runs the full pipeline: filter the catalog, score each survivor
// against the profile, and sort by score descending. Score ties break on the
// sooner parsed deadline; ties with one or both deadlines unparseable keep
// their prior relative order, which is why the sort must be stable.
func Rank(catalog []models.Scholarship, f models.FilterSet, p models.StudentProfile, now time.Time) []Ranked {
	ranked := make([]Ranked, 0, len(catalog))
	for _, s := range catalog {
		if !Matches(s, f, now) {
			continue
		}
		ranked = append(ranked, Ranked{Scholarship: s, Score: Score(s, p)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		di, iOK := models.ParseDeadline(ranked[i].Deadline)
		dj, jOK := models.ParseDeadline(ranked[j].Deadline)
		if iOK && jOK {
			return di.Before(dj)
		}
		return false
	})

	return ranked
}
