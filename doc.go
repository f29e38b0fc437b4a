// Mmdbget is a small utility which provisions GeoLite2 databases.
//
// Idea is simple: MaxMind distributes its free databases as tar.gz
// archives behind an authenticated endpoint. You have a license key,
// maybe an account id, and you want fresh .mmdb files on a disk before
// your service starts. This tool downloads them, and only when the
// local copies are actually older than what the server has.
//
// Tool itself is organized into 2 logical parts:
//
// Geolite
//
// geolite is a main package of the application. It knows about
// editions, builds download URLs, talks to the endpoints and extracts
// database files from archive streams. Everything there takes explicit
// credentials and a context, so it is usable as a library.
//
// Config
//
// This package resolves credentials, edition selection and the
// download directory from a TOML file, environment variables and
// explicit overrides.
//
// A main package itself wires both together into a CLI binary.
package main
