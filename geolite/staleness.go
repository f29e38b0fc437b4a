package geolite

import (
	"context"
	"fmt"
	"net/http"
	"os"
)

// IsOutdated tells whether the local database file has to be refreshed
// from remoteURL. A missing file is always outdated and no network call
// is made for it. Otherwise the remote Last-Modified header decides:
// the file is outdated iff its modification time is strictly earlier.
// Equal timestamps mean the file is current.
func (c *Client) IsOutdated(ctx context.Context, localPath, remoteURL string) (bool, error) {
	info, err := os.Stat(localPath)

	switch {
	case os.IsNotExist(err):
		return true, nil
	case err != nil:
		return false, fmt.Errorf("cannot stat %s: %w", localPath, err)
	}

	resp, err := c.Do(ctx, http.MethodHead, remoteURL)
	if err != nil {
		return false, err
	}

	defer flushResponse(resp.Body)

	lastModified, err := http.ParseTime(resp.Header.Get("Last-Modified"))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrNoLastModified, err)
	}

	return info.ModTime().Before(lastModified), nil
}
