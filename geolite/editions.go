package geolite

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Edition identifies a single GeoLite2 database product.
type Edition string

const (
	EditionCity    Edition = "City"
	EditionCountry Edition = "Country"
	EditionASN     Edition = "ASN"
)

// Editions lists every known edition. Whatever order a user has given,
// editions are always processed in this one.
var Editions = []Edition{
	EditionCity,
	EditionCountry,
	EditionASN,
}

const (
	editionIDPrefix = "GeoLite2-"

	// mmdbExtension is the only kind of archive member worth keeping.
	mmdbExtension = ".mmdb"
)

// ID returns the MaxMind edition identifier, e.g. GeoLite2-City.
func (e Edition) ID() string {
	return editionIDPrefix + string(e)
}

// FileName returns the name of the database file on a disk.
func (e Edition) FileName() string {
	return e.ID() + mmdbExtension
}

// TargetPath returns a path to the database file within the given
// download directory.
func (e Edition) TargetPath(dir string) string {
	return filepath.Join(dir, e.FileName())
}

// SelectEditions intersects the given names with the known edition set.
// Matching is case-insensitive, duplicates collapse and the result
// keeps the order of Editions, not the order of names. An unknown name
// is an error.
func SelectEditions(names []string) ([]Edition, error) {
	requested := map[Edition]bool{}

	for _, name := range names {
		found := false

		for _, edition := range Editions {
			if strings.EqualFold(name, string(edition)) {
				requested[edition] = true
				found = true

				break
			}
		}

		if !found {
			return nil, fmt.Errorf("unknown edition %s", name)
		}
	}

	selected := make([]Edition, 0, len(requested))

	for _, edition := range Editions {
		if requested[edition] {
			selected = append(selected, edition)
		}
	}

	return selected, nil
}
