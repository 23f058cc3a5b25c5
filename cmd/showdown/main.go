package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"showdown-server/internal/cli"
)

// Version is the CLI version
var Version = "v0.0.0-dev"

func main() {
	cli.Version = Version

	if err := cli.Execute(); err != nil {
		logrus.WithError(err).Error("showdown failed")
		os.Exit(1)
	}
}
