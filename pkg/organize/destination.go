package organize

import (
	"context"
	"path/filepath"
	"time"

	"github.com/sdevries/fileshelf/pkg/models"
)

// collisionLayout is the timestamp inserted between a file's stem and
// extension when its plain name is already taken, e.g.
// report_20240131_235959.pdf. Seconds resolution: two collisions in
// the same second are not disambiguated further and the second move
// fails with an already-exists error.
const collisionLayout = "20060102_150405"

// destinationName returns the name the entry should take inside
// categoryDir. The original name is used unless it is already
// occupied, in which case a timestamped variant is generated.
func (o *Organizer) destinationName(ctx context.Context, categoryDir string, entry *models.FileEntry) (string, error) {
	occupied, err := o.backend.Exists(ctx, filepath.Join(categoryDir, entry.Name))
	if err != nil {
		return "", err
	}
	if !occupied {
		return entry.Name, nil
	}
	return collisionName(entry, o.now()), nil
}

// collisionName builds the timestamped rename for a colliding entry
func collisionName(entry *models.FileEntry, at time.Time) string {
	return entry.Stem() + "_" + at.Format(collisionLayout) + filepath.Ext(entry.Name)
}
