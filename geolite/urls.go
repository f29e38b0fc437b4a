package geolite

import "net/url"

// Credentials carry MaxMind authentication data. LicenseKey is always
// required. AccountID is optional: its presence switches both the
// download endpoint and the authentication scheme.
type Credentials struct {
	AccountID  string
	LicenseKey string
}

// Validate tells if credentials are complete enough to start a run.
func (c Credentials) Validate() error {
	if c.LicenseKey == "" {
		return ErrLicenseKeyRequired
	}

	return nil
}

const maxmindHost = "download.maxmind.com"

// DownloadURL builds a URL of the edition archive. There are two
// shapes: accounts with a known id use the modern endpoint (credentials
// travel as basic auth, see Client), everyone else uses the legacy one
// with the license key in the query string. The shapes are never mixed
// within one request.
func DownloadURL(edition Edition, creds Credentials) string {
	if creds.AccountID != "" {
		urlStruct := url.URL{
			Scheme:   "https",
			Host:     maxmindHost,
			Path:     "/geoip/databases/" + edition.ID() + "/download",
			RawQuery: "suffix=tar.gz",
		}

		return urlStruct.String()
	}

	queryValues := url.Values{}

	queryValues.Set("edition_id", edition.ID())
	queryValues.Set("license_key", creds.LicenseKey)
	queryValues.Set("suffix", "tar.gz")

	urlStruct := url.URL{
		Scheme:   "https",
		Host:     maxmindHost,
		Path:     "/app/geoip_download",
		RawQuery: queryValues.Encode(),
	}

	return urlStruct.String()
}
