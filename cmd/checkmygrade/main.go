package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/checkmygrade/internal/buildinfo"
	"github.com/dmitrijs2005/checkmygrade/internal/cli"
	"github.com/dmitrijs2005/checkmygrade/internal/config"
	"github.com/dmitrijs2005/checkmygrade/internal/filex"
	"github.com/dmitrijs2005/checkmygrade/internal/logging"
	"github.com/google/uuid"
)

const logFileName = "checkmygrade.log"

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		log.Fatalf("%v", err)
	}

	logFile, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logFile.Close()

	logger, err := logging.New(logFile, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(cfg, logger.With("session", uuid.NewString()))
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
