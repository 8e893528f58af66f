package config

import (
	"io"
	"log"
	"os"
	"sync"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

var (
	mu            sync.Mutex
	configuration *Configuration
)

// GetConfiguration returns the configuration parsed from the environment,
// loading it on first use. Invalid values are fatal.
func GetConfiguration() Configuration {
	mu.Lock()
	defer mu.Unlock()
	if configuration == nil {
		conf, err := Load()
		if err != nil {
			log.Fatalf("failed loading config: %s", err)
		}
		configuration = conf
	}
	return *configuration
}

// Load reads an optional .env file from the working directory and then parses
// the environment. Octaves are clamped.
func Load() (*Configuration, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "load dotenv")
	}
	conf := &Configuration{}
	if err := envconfig.Process(envprefix, conf); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	conf.Octaves = ClampOctaves(conf.Octaves)
	if err := CheckPersistence(conf.Persistence); err != nil {
		return nil, err
	}
	return conf, nil
}

// PrintUsage writes a table of the recognized environment variables.
func PrintUsage(w io.Writer) error {
	tabs := tabwriter.NewWriter(w, 1, 0, 4, ' ', 0)
	if err := envconfig.Usagef(envprefix, &Configuration{}, tabs, usageHelpFormat); err != nil {
		return err
	}
	return tabs.Flush()
}

// see https://github.com/kelseyhightower/envconfig/blob/v1.4.0/usage.go#L31
const usageHelpFormat = `KEY	DESCRIPTION	DEFAULT
{{range .}}{{usage_key .}}	{{usage_description .}}	{{usage_default .}}
{{end}}`
