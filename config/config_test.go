package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/9seconds/mmdbget/config"
	"github.com/9seconds/mmdbget/geolite"
)

func cleanEnviron(t *testing.T) {
	t.Helper()

	for _, v := range []string{
		config.EnvAccountID,
		config.EnvLicenseKey,
		config.EnvEditions,
		config.EnvDownloadDir,
	} {
		t.Setenv(v, "")
	}
}

func TestLoadFromFile(t *testing.T) {
	cleanEnviron(t)

	text := `account_id = "100500"
license_key = "sekret"
directory = "/var/lib/mmdb"
editions = ["City", "ASN"]
http_timeout = "2m"`

	conf, err := config.Load(strings.NewReader(text), config.Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "100500", conf.Credentials.AccountID)
	assert.Equal(t, "sekret", conf.Credentials.LicenseKey)
	assert.Equal(t, "/var/lib/mmdb", conf.Directory)
	assert.Equal(t,
		[]geolite.Edition{geolite.EditionCity, geolite.EditionASN},
		conf.Editions)
	assert.Equal(t, 2*time.Minute, conf.HTTPTimeout)
}

func TestLoadDefaults(t *testing.T) {
	cleanEnviron(t)

	conf, err := config.Load(nil, config.Overrides{LicenseKey: "sekret"})
	require.NoError(t, err)

	assert.Empty(t, conf.Credentials.AccountID)
	assert.Equal(t, config.DefaultDirectory, conf.Directory)
	assert.Equal(t, geolite.Editions, conf.Editions)
	assert.Zero(t, conf.HTTPTimeout)
}

func TestLoadFromEnviron(t *testing.T) {
	cleanEnviron(t)
	t.Setenv(config.EnvLicenseKey, "sekret")
	t.Setenv(config.EnvEditions, "Country, ASN")
	t.Setenv(config.EnvDownloadDir, "/srv/mmdb")

	conf, err := config.Load(nil, config.Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "sekret", conf.Credentials.LicenseKey)
	assert.Equal(t, "/srv/mmdb", conf.Directory)
	assert.Equal(t,
		[]geolite.Edition{geolite.EditionCountry, geolite.EditionASN},
		conf.Editions)
}

func TestEnvironWinsOverFile(t *testing.T) {
	cleanEnviron(t)
	t.Setenv(config.EnvLicenseKey, "from-env")

	text := `license_key = "from-file"`

	conf, err := config.Load(strings.NewReader(text), config.Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "from-env", conf.Credentials.LicenseKey)
}

func TestOverridesWinOverEnviron(t *testing.T) {
	cleanEnviron(t)
	t.Setenv(config.EnvLicenseKey, "from-env")
	t.Setenv(config.EnvEditions, "City")

	conf, err := config.Load(nil, config.Overrides{
		LicenseKey: "from-flag",
		Editions:   []string{"ASN"},
	})
	require.NoError(t, err)

	assert.Equal(t, "from-flag", conf.Credentials.LicenseKey)
	assert.Equal(t, []geolite.Edition{geolite.EditionASN}, conf.Editions)
}

func TestMissingLicenseKey(t *testing.T) {
	cleanEnviron(t)

	_, err := config.Load(nil, config.Overrides{})

	assert.ErrorIs(t, err, geolite.ErrLicenseKeyRequired)
}

func TestUnknownEdition(t *testing.T) {
	cleanEnviron(t)

	_, err := config.Load(nil, config.Overrides{
		LicenseKey: "sekret",
		Editions:   []string{"Universe"},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Universe")
}

func TestBrokenFile(t *testing.T) {
	cleanEnviron(t)

	_, err := config.Load(strings.NewReader("license_key = ["), config.Overrides{})

	assert.Error(t, err)
}
