package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Sources   SourcesConfig   `yaml:"sources" mapstructure:"sources"`
	Directory DirectoryConfig `yaml:"directory" mapstructure:"directory"`
	Ledger    LedgerConfig    `yaml:"ledger" mapstructure:"ledger"`
	Auth      AuthConfig      `yaml:"auth" mapstructure:"auth"`
	Schema    SchemaConfig    `yaml:"schema" mapstructure:"schema"`
	FTP       FTPConfig       `yaml:"ftp" mapstructure:"ftp"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// SourcesConfig maps source category names to feed file paths (xlsx or csv).
// Keys are the category identifiers; the legacy "customer_list" key is
// accepted and remapped at ingestion.
type SourcesConfig struct {
	Tables map[string]string `yaml:"tables" mapstructure:"tables"`
}

// DirectoryConfig locates the contact directory table.
type DirectoryConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LedgerConfig selects and locates the feedback ledger backend.
type LedgerConfig struct {
	Backend     string `yaml:"backend" mapstructure:"backend"` // csv | sqlite | postgres
	Path        string `yaml:"path" mapstructure:"path"`       // csv/sqlite file path
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// AuthConfig configures identity resolution.
type AuthConfig struct {
	AdminSecret        string `yaml:"admin_secret" mapstructure:"admin_secret"`
	Mode               string `yaml:"mode" mapstructure:"mode"` // phone_last4 | employee_code
	EmployeeCodeLength int    `yaml:"employee_code_length" mapstructure:"employee_code_length"`
	LoginRatePerMin    int    `yaml:"login_rate_per_min" mapstructure:"login_rate_per_min"`
}

// SchemaConfig points at the optional synonym override file.
type SchemaConfig struct {
	OverridesPath string `yaml:"overrides_path" mapstructure:"overrides_path"`
}

// FTPConfig holds credentials for feeds published on FTP drop sites.
type FTPConfig struct {
	User        string `yaml:"user" mapstructure:"user"`
	Password    string `yaml:"password" mapstructure:"password"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	DownloadDir string `yaml:"download_dir" mapstructure:"download_dir"`
}

// ServerConfig configures the dashboard API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("VOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. Empty defaults register the key so env overrides unmarshal.
	v.SetDefault("directory.path", "")
	v.SetDefault("schema.overrides_path", "")
	v.SetDefault("auth.admin_secret", "")
	v.SetDefault("ledger.database_url", "")
	v.SetDefault("ftp.user", "")
	v.SetDefault("ftp.password", "")
	v.SetDefault("ledger.backend", "csv")
	v.SetDefault("ledger.path", "feedback.csv")
	v.SetDefault("auth.mode", "phone_last4")
	v.SetDefault("auth.employee_code_length", 6)
	v.SetDefault("auth.login_rate_per_min", 10)
	v.SetDefault("ftp.timeout_secs", 30)
	v.SetDefault("ftp.download_dir", "/tmp/voc-feeds")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
