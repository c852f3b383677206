package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/urfave/cli"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/app"
	xapp "github.com/iov-one/xswap/cmd/xswapd/app"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[xswapd] %v\n", err)
	os.Exit(1)
}

func main() {
	// A missing .env file is fine, the flags have defaults.
	_ = godotenv.Load()

	cliApp := cli.NewApp()
	cliApp.Version = xswap.Version()
	cliApp.Name = "xswapd"
	cliApp.Usage = "cross-chain swap state machine"
	cliApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "home",
			Value:  defaultHome(),
			Usage:  "directory holding the state",
			EnvVar: "XSWAP_HOME",
		},
		cli.StringFlag{
			Name:   "log-level",
			Value:  "info",
			Usage:  "debug, info, error or none",
			EnvVar: "XSWAP_LOG_LEVEL",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "report full error details",
		},
	}
	cliApp.Commands = []cli.Command{
		initCommand, submitCommand, queryCommand,
		decodeCommand, swapIDCommand, recoverCommand,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fatal(err)
	}
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".xswap"
	}
	return filepath.Join(home, ".xswap")
}

func newLogger(ctx *cli.Context) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout))
	opt, err := log.AllowLevel(ctx.GlobalString("log-level"))
	if err != nil {
		return nil, err
	}
	return log.NewFilter(logger, opt).With("module", "xswapd"), nil
}

// openProcessor opens the state in the home directory. The caller must
// call the returned close function.
func openProcessor(ctx *cli.Context) (*app.Processor, func() error, error) {
	logger, err := newLogger(ctx)
	if err != nil {
		return nil, nil, err
	}
	dir := filepath.Join(ctx.GlobalString("home"), "data")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, nil, err
	}
	return xapp.Application(dir, logger, prometheus.DefaultRegisterer,
		app.WithDebug(ctx.GlobalBool("debug")))
}
