package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/9seconds/mmdbget/config"
	"github.com/9seconds/mmdbget/geolite"
)

var (
	app = kingpin.New(
		"mmdbget",
		"Download and refresh GeoLite2 databases.")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("MMDBGET_DEBUG").
		Bool()
	configFile = app.Flag("config", "Path to the config file.").
			Short('c').
			File()
	accountID = app.Flag("account-id", "MaxMind account id.").
			String()
	licenseKey = app.Flag("license-key", "MaxMind license key.").
			String()
	directory = app.Flag("directory", "Directory to store databases in.").
			String()
	httpTimeout = app.Flag("http-timeout", "Timeout of a single request.").
			Default("0s").
			Duration()
	editions = app.Arg("editions", "Editions to download (City, Country, ASN). All by default.").
			Strings()
)

func init() {
	app.Version("0.1.0")
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.InfoLevel)

	godotenv.Load() // nolint: errcheck
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	conf, err := loadConfig()
	if err != nil {
		log.Fatalf("Cannot resolve configuration: %v", err)
	}

	ctx, cancel := makeRootContext()
	defer cancel()

	client := geolite.NewClient(conf.Credentials, conf.HTTPTimeout)
	updater := geolite.NewUpdater(client, conf.Editions, conf.Directory)

	outcomes, err := updater.Run(ctx)

	for _, v := range outcomes {
		log.WithFields(log.Fields{
			"edition": v.Edition.ID(),
			"status":  v.Status,
			"path":    v.Path,
		}).Info("Edition has been processed.")
	}

	if err != nil {
		log.Fatalf("Update has failed: %v", err)
	}
}

func loadConfig() (*config.Config, error) {
	over := config.Overrides{
		AccountID:   *accountID,
		LicenseKey:  *licenseKey,
		Directory:   *directory,
		Editions:    *editions,
		HTTPTimeout: durationOrZero(*httpTimeout),
	}

	if *configFile != nil {
		defer (*configFile).Close()

		return config.Load(*configFile, over)
	}

	return config.Load(nil, over)
}

func durationOrZero(value time.Duration) time.Duration {
	if value < 0 {
		return 0
	}

	return value
}
