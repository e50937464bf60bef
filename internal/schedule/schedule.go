// Package schedule classifies shows as past or upcoming relative to a
// reference instant.  The split is the only derived logic behind the
// venue and artist detail pages: everything else on those pages is a
// straight projection of stored rows.
package schedule

import (
	"time"

	"github.com/stagebook/stagebook/internal/model"
)

// Split partitions shows into past and upcoming buckets relative to now.
// A show starting strictly after now is upcoming; one starting at or
// before now is past, so a show beginning exactly at the reference
// instant lands in past.  Input order is preserved within each bucket.
// The function is pure: it never reads the wall clock and has no side
// effects, which is why callers inject now.
func Split(shows []model.ShowDetail, now time.Time) (past, upcoming []model.ShowDetail) {
	past = make([]model.ShowDetail, 0, len(shows))
	upcoming = make([]model.ShowDetail, 0, len(shows))
	for _, s := range shows {
		if s.StartTime.After(now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}
