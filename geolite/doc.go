// Package geolite downloads GeoLite2 databases from MaxMind.
//
// It covers the whole acquisition pipeline: building download URLs for
// both authentication schemes, talking to the endpoints with a single
// manual redirect hop, deciding whether a local file is stale by the
// remote Last-Modified header and extracting .mmdb members out of
// streamed tar.gz archives.
//
// The entry point is Updater: give it a Client and a list of editions
// and it brings a directory of database files up to date, one edition
// at a time.
package geolite
