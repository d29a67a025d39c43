package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bikeshare/communication"
	"bikeshare/utils"
)

const (
	logLevelEnv  = "LOG_LEVEL"
	rabbitURLEnv = "RABBIT_URL"

	defaultLogLevel   = "info"
	defaultPageSize   = 5
	DefaultTimeLayout = "2006-01-02 15:04:05"
)

// DatasetConfig contains the location of the files of one city
// + Trips: path to the trips CSV file
// + Stations: optional path to a CSV with station coordinates (name,latitude,longitude)
// + TimeLayout: Go layout of the timestamps of the trips file
type DatasetConfig struct {
	Trips      string `yaml:"trips"`
	Stations   string `yaml:"stations"`
	TimeLayout string `yaml:"time_layout"`
}

// RawDataConfig contains the parameters of the raw data viewer
// + PageSize: amount of trips shown per page
// + LegacyWindow: if true, each page shows PageSize+1 trips, overlapping with the next page
type RawDataConfig struct {
	PageSize     int  `yaml:"page_size"`
	LegacyWindow bool `yaml:"legacy_window"`
}

// ReportQueueConfig contains the parameters to publish the reports of each session
type ReportQueueConfig struct {
	Enabled                      bool `yaml:"enabled"`
	communication.RabbitMQConfig `yaml:",inline"`
}

type Config struct {
	LogLevel    string                   `yaml:"log_level"`
	Datasets    map[string]DatasetConfig `yaml:"datasets"`
	RawData     RawDataConfig            `yaml:"raw_data"`
	ReportQueue ReportQueueConfig        `yaml:"report_queue"`
}

// LoadConfig reads the YAML file in configFilepath, applies the environment overrides
// and fills the missing values with defaults
func LoadConfig(configFilepath string) (*Config, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(configFile)
	if err != nil {
		return nil, err
	}

	if logLevel := os.Getenv(logLevelEnv); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if rabbitURL := os.Getenv(rabbitURLEnv); rabbitURL != "" {
		cfg.ReportQueue.URL = rabbitURL
	}

	return cfg, nil
}

// Parse unmarshals a YAML config and fills the missing values with defaults
func Parse(configBytes []byte) (*Config, error) {
	var cfg Config
	err := yaml.Unmarshal(configBytes, &cfg)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	if c.RawData.PageSize <= 0 {
		c.RawData.PageSize = defaultPageSize
	}

	datasets := make(map[string]DatasetConfig, len(c.Datasets))
	for city, datasetConfig := range c.Datasets {
		if datasetConfig.TimeLayout == "" {
			datasetConfig.TimeLayout = DefaultTimeLayout
		}
		datasets[utils.Normalize(city)] = datasetConfig
	}
	c.Datasets = datasets
}
