package cmd

import "github.com/caarlos0/env/v11"

// envDefaults holds the flag defaults an operator can override with environment variables instead of repeating
// them on every invocation, e.g. in a CI job that always parses the same base directory.
type envDefaults struct {
	LogLevel     string `env:"ELCL_LOG_LEVEL" envDefault:"info"`
	BaseDir      string `env:"ELCL_BASE_DIR"`
	Unrestricted bool   `env:"ELCL_UNRESTRICTED" envDefault:"false"`
}

func loadEnvDefaults() envDefaults {
	var cfg envDefaults
	if err := env.Parse(&cfg); err != nil {
		return envDefaults{LogLevel: "info"}
	}
	return cfg
}
