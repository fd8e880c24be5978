package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/tinycodec/mdeflate/cmd/mdeflate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.WithError(err).Error("mdeflate: command failed")
		os.Exit(1)
	}
}
