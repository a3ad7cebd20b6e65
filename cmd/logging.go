package cmd

import (
	"os"

	"github.com/der-antikeks/flatscene/config"
	"github.com/der-antikeks/flatscene/log"
	"github.com/urfave/cli"
)

var logger = log.New("flatscene")

// The configured level applies unless -v or -vv ask for more.
func setupLogging(ctx *cli.Context, cfg config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warningf("%v, using notice", err)
	}
	log.SetLevel(level)

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// Fatal logs err and exits with a non-zero status.
func Fatal(err error) {
	logger.Error(err)
	os.Exit(1)
}
