package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"

	"github.com/9seconds/mmdbget/geolite"
)

// Environment variables consulted by Load. A .env file in the working
// directory is honored too (see main).
const (
	EnvAccountID   = "MAXMIND_ACCOUNT_ID"
	EnvLicenseKey  = "MAXMIND_LICENSE_KEY"
	EnvEditions    = "MAXMIND_EDITIONS"
	EnvDownloadDir = "MAXMIND_DOWNLOAD_DIR"
)

// DefaultDirectory is where databases land when nothing else is
// configured, relative to the working directory.
const DefaultDirectory = "dbs"

type duration struct {
	time.Duration
}

func (dur *duration) UnmarshalText(text []byte) (err error) {
	dur.Duration, err = time.ParseDuration(string(text))
	return
}

type fileConfig struct {
	AccountID   string   `toml:"account_id"`
	LicenseKey  string   `toml:"license_key"`
	Directory   string   `toml:"directory"`
	Editions    []string `toml:"editions"`
	HTTPTimeout duration `toml:"http_timeout"`
}

// Overrides carry explicit values, usually from CLI flags. A non-zero
// field wins over both the environment and the config file.
type Overrides struct {
	AccountID   string
	LicenseKey  string
	Directory   string
	Editions    []string
	HTTPTimeout time.Duration
}

// Config is a fully resolved, validated configuration of a run.
type Config struct {
	Credentials geolite.Credentials
	Editions    []geolite.Edition
	Directory   string
	HTTPTimeout time.Duration
}

// Load merges an optional TOML file, the environment and explicit
// overrides into a Config. Precedence, weakest first: built-in
// defaults, file, environment, overrides. file may be nil.
//
// All three editions are selected by default.
func Load(file io.Reader, over Overrides) (*Config, error) {
	fconf := fileConfig{}

	if file != nil {
		buf, err := io.ReadAll(file)
		if err != nil {
			return nil, errors.Annotate(err, "Cannot read config file")
		}

		if _, err := toml.Decode(string(buf), &fconf); err != nil {
			return nil, errors.Annotate(err, "Cannot parse config file")
		}
	}

	accountID := resolve(over.AccountID, os.Getenv(EnvAccountID), fconf.AccountID)
	licenseKey := resolve(over.LicenseKey, os.Getenv(EnvLicenseKey), fconf.LicenseKey)
	directory := resolve(over.Directory, os.Getenv(EnvDownloadDir), fconf.Directory)

	if directory == "" {
		directory = DefaultDirectory
	}

	editionNames := fconf.Editions

	if env := os.Getenv(EnvEditions); env != "" {
		editionNames = splitList(env)
	}

	if len(over.Editions) > 0 {
		editionNames = over.Editions
	}

	conf := &Config{
		Credentials: geolite.Credentials{
			AccountID:  accountID,
			LicenseKey: licenseKey,
		},
		Directory:   directory,
		HTTPTimeout: fconf.HTTPTimeout.Duration,
	}

	if over.HTTPTimeout > 0 {
		conf.HTTPTimeout = over.HTTPTimeout
	}

	if err := conf.Credentials.Validate(); err != nil {
		return nil, errors.Trace(err)
	}

	if len(editionNames) == 0 {
		conf.Editions = geolite.Editions

		return conf, nil
	}

	editions, err := geolite.SelectEditions(editionNames)
	if err != nil {
		return nil, errors.Annotate(err, "Incorrect editions")
	}

	conf.Editions = editions

	return conf, nil
}

func resolve(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func splitList(value string) []string {
	items := []string{}

	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			items = append(items, v)
		}
	}

	return items
}
