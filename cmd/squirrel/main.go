package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/xlab/closer"

	"squirrel-noise/internal/config"
)

func main() {
	conf := config.GetConfiguration()
	app := newApp(conf, os.Stdout)

	if err := app.Run(os.Args); err != nil {
		closer.Fatalln(redErr(err))
	}
	closer.Close()
}

func redErr(err error) error {
	msg := strings.TrimRight(err.Error(), "\n")
	return errors.New(fred("Error: ") + msg)
}
