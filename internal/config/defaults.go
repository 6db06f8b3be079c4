package config

const (
	defaultStorePath      = "~/.local/share/filmbox/films.json"
	defaultLogDir         = "~/.local/share/filmbox/logs"
	defaultSnapshotPath   = "~/.cache/filmbox/snapshot.json"
	defaultBind           = "127.0.0.1:5000"
	defaultServerURL      = "http://127.0.0.1:5000"
	defaultRequestTimeout = 10
	defaultRetryAttempts  = 5
	defaultRetryDelay     = 2
	defaultInitialDelay   = 1
	defaultSearchMode     = SearchModeSubstring
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Search modes for the client's search command.
const (
	SearchModeSubstring = "substring"
	SearchModeExact     = "exact"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StorePath:    defaultStorePath,
			LogDir:       defaultLogDir,
			SnapshotPath: defaultSnapshotPath,
		},
		Server: Server{
			Bind: defaultBind,
		},
		Client: Client{
			ServerURL:      defaultServerURL,
			RequestTimeout: defaultRequestTimeout,
			RetryAttempts:  defaultRetryAttempts,
			RetryDelay:     defaultRetryDelay,
			InitialDelay:   defaultInitialDelay,
			SearchMode:     defaultSearchMode,
		},
		Catalog: Catalog{
			SeedSample: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
