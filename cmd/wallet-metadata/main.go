package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bloxapp/wallet-metadata/pkg/notify"
	"github.com/bloxapp/wallet-metadata/pkg/version"
)

type Globals struct {
	LogLevel string `env:"LOG_LEVEL" enum:"debug,info,warn,error"  default:"info"       help:"Log level."`
	Config   string `env:"CONFIG"                                                       help:"Path to a YAML config file."`
	Network  string `env:"NETWORK"   enum:"MainNet,TestNet"        default:"MainNet"    help:"Network to operate against."`
	Explorer string `env:"EXPLORER"  enum:"Neotracker,Neoscan"     default:"Neotracker" help:"Block explorer to generate links for."`
}

type CLI struct {
	Globals

	Version      kong.VersionFlag `help:"Print the wallet version and exit."`
	CheckVersion CheckVersionCmd  `cmd:"" help:"Checks whether a newer wallet release is available."`
	SyncHeight   SyncHeightCmd    `cmd:"" help:"Syncs the block height from the wallet database."`
	Watch        WatchCmd         `cmd:"" help:"Keeps the block height synced and checks for new releases."`
	Link         LinkCmd          `cmd:"" help:"Prints a block explorer link."`
}

func main() {
	// Parse .env file.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal(err)
	}

	// Parse CLI.
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wallet-metadata"),
		kong.Description("Tracks wallet network metadata and checks for wallet updates."),
		kong.UsageOnError(),
		kong.Vars{
			"version": version.Version,
		},
	)

	// Setup logger.
	logLevel, err := zapcore.ParseLevel(cli.Globals.LogLevel)
	if err != nil {
		log.Fatal(fmt.Errorf("failed to parse log level: %w", err))
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(colorable.NewColorableStdout()),
		logLevel,
	))
	defer logger.Sync() //nolint:errcheck

	app, err := newApp(logger, &cli.Globals, notify.SystemOpener{}, os.Stdout)
	if err != nil {
		ctx.FatalIfErrorf(err)
	}
	defer app.Close()

	// Run the CLI.
	err = ctx.Run(logger, &cli.Globals, app)
	ctx.FatalIfErrorf(err)
}
