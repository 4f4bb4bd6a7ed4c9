package main

import (
	"os"

	"github.com/hamidzr/recents/internal/cli"
	"github.com/sirupsen/logrus"
)

func main() {
	cmd := cli.InitCLI()
	if err := cmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
