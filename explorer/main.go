package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/catalog"
	"bikeshare/config"
	"bikeshare/loader"
	"bikeshare/paginator"
	"bikeshare/publisher"
	"bikeshare/session"
	"bikeshare/utils"
)

const (
	configPathEnv     = "CONFIG_PATH"
	defaultConfigPath = "./explorer/config/config.yaml"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func main() {
	configPath := os.Getenv(configPathEnv)
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("%s", err)
		return
	}

	if err := InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("%s", err)
		return
	}

	reportPublisher, err := publisher.New(cfg.ReportQueue)
	if err != nil {
		log.Errorf("[explorer][status: ERROR] reports will not be published: %s", err.Error())
		reportPublisher = publisher.NewNoop()
	}

	sourceCatalog := catalog.FromConfig(cfg)
	runner := session.New(
		loader.New(sourceCatalog),
		reportPublisher,
		paginator.WithPageSize(cfg.RawData.PageSize),
		paginator.WithLegacyWindow(cfg.RawData.LegacyWindow),
	)

	signalChannel := utils.GetSignalChannel()
	go func() {
		sig := <-signalChannel
		log.Infof("[explorer] signal %s received, closing explorer", sig)
		closeRunner(runner)
		os.Exit(0)
	}()

	explorer := NewExplorer(os.Stdin, os.Stdout, runner, sourceCatalog.Cities())
	if err := explorer.Run(context.Background()); err != nil {
		log.Errorf("[explorer][status: ERROR] %s", err.Error())
	}

	closeRunner(runner)
	log.Debug("[explorer] Finish main.go")
}

func closeRunner(runner *session.Runner) {
	if err := runner.Close(); err != nil {
		log.Errorf("[explorer][status: ERROR] error closing publisher: %s", err.Error())
	}
}
