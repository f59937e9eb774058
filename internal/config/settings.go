// Package config holds the cardsearch settings read from the environment.
package config

type (
	Config struct {
		Data    Data    `json:"data"`
		Search  Search  `json:"search"`
		Logging Logging `json:"logging"`
	}

	// Data locates the corpus. When DBPath is set the corpus is read from the
	// SQLite snapshot instead of the JSON documents.
	Data struct {
		CardsPath string `envconfig:"CARDSEARCH_CARDS_PATH" default:"cards.json" json:"cards_path"`
		SetsPath  string `envconfig:"CARDSEARCH_SETS_PATH" default:"sets.json" json:"sets_path"`
		DBPath    string `envconfig:"CARDSEARCH_DB_PATH" default:"" json:"db_path,omitempty"`
	}

	Search struct {
		ResultLimit   int `envconfig:"CARDSEARCH_RESULT_LIMIT" default:"300" json:"result_limit"`
		ScanWorkers   int `envconfig:"CARDSEARCH_SCAN_WORKERS" default:"4" json:"scan_workers"`
		PartitionSize int `envconfig:"CARDSEARCH_PARTITION_SIZE" default:"2048" json:"partition_size"`
	}

	Logging struct {
		Level  string `envconfig:"CARDSEARCH_LOG_LEVEL" default:"info" json:"level"`
		Format string `envconfig:"CARDSEARCH_LOG_FORMAT" default:"console" json:"format"`
	}
)

// Default returns the configuration used when no variables are set.
func Default() *Config {
	return &Config{
		Data: Data{
			CardsPath: "cards.json",
			SetsPath:  "sets.json",
		},
		Search: Search{
			ResultLimit:   300,
			ScanWorkers:   4,
			PartitionSize: 2048,
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}
