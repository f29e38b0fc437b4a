package geolite

import (
	"context"
	"fmt"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"
)

// Status describes how a single edition ended up after a run.
type Status string

const (
	// StatusUpToDate means the local file was fresh enough and nothing
	// was downloaded.
	StatusUpToDate Status = "up to date"

	// StatusDownloaded means a new database file was fetched and
	// extracted.
	StatusDownloaded Status = "downloaded"
)

// Outcome records how a single edition was handled during a run.
type Outcome struct {
	Edition Edition
	Status  Status
	Path    string
}

// Updater drives a full acquisition run over a set of editions.
type Updater struct {
	client    *Client
	editions  []Edition
	directory string
}

// NewUpdater returns an updater which stores databases for the given
// editions under directory. The directory is created lazily on Run.
func NewUpdater(client *Client, editions []Edition, directory string) *Updater {
	return &Updater{
		client:    client,
		editions:  editions,
		directory: directory,
	}
}

// Run processes editions one at a time, in the order of the Editions
// enumeration. An edition whose local file is current is skipped.
// The first failure aborts the whole run: outcomes collected before it
// are returned alongside the error and remaining editions are not
// touched.
func (u *Updater) Run(ctx context.Context) ([]Outcome, error) {
	if err := u.client.creds.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(u.directory, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create a download directory: %w", err)
	}

	outcomes := make([]Outcome, 0, len(u.editions))

	for _, edition := range u.editions {
		outcome, err := u.processEdition(ctx, edition)
		if err != nil {
			return outcomes, fmt.Errorf("cannot update %s: %w", edition.ID(), err)
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func (u *Updater) processEdition(ctx context.Context, edition Edition) (Outcome, error) {
	target := edition.TargetPath(u.directory)
	downloadURL := DownloadURL(edition, u.client.creds)

	logger := log.WithFields(log.Fields{
		"edition": edition.ID(),
		"path":    target,
	})

	outdated, err := u.client.IsOutdated(ctx, target, downloadURL)
	if err != nil {
		return Outcome{}, err
	}

	if !outdated {
		logger.Info("Database is up to date.")

		return Outcome{Edition: edition, Status: StatusUpToDate, Path: target}, nil
	}

	logger.Info("Downloading database.")

	resp, err := u.client.Do(ctx, http.MethodGet, downloadURL)
	if err != nil {
		return Outcome{}, err
	}

	defer flushResponse(resp.Body)

	if err := Extract(ctx, resp.Body, u.directory); err != nil {
		return Outcome{}, err
	}

	logger.Debug("Database has been extracted.")

	return Outcome{Edition: edition, Status: StatusDownloaded, Path: target}, nil
}
