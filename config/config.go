package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type Config struct {
	Port                string `mapstructure:"port" json:"port"`
	DatabasePath        string `mapstructure:"database_path" json:"databasePath"`
	Locale              string `mapstructure:"locale" json:"locale"`
	PreviewHorizonDays  int    `mapstructure:"preview_horizon_days" json:"previewHorizonDays"`
	DefaultSampleCharge string `mapstructure:"default_sample_charge" json:"defaultSampleCharge"`
	StatementFolderPath string `mapstructure:"statement_folder_path" json:"statementFolderPath"`
	StatementEncoding   string `mapstructure:"statement_encoding" json:"statementEncoding"`
	BankPortalURL       string `mapstructure:"bank_portal_url" json:"bankPortalURL"`
	BankUserID          string `mapstructure:"bank_user_id" json:"bankUserID"`
	BankPassword        string `mapstructure:"bank_password" json:"bankPassword"`
	BankHeadless        bool   `mapstructure:"bank_headless" json:"bankHeadless"`
}

var (
	cfg = defaults()
	mu  sync.RWMutex
)

const (
	defaultConfigFilePath = "./propdesk_config.json"
	envPrefix             = "PROPDESK"
)

func defaults() Config {
	return Config{
		Port:                "8080",
		DatabasePath:        "./propdesk.db",
		Locale:              "en-US",
		PreviewHorizonDays:  7,
		DefaultSampleCharge: "1200",
		StatementEncoding:   "utf-8",
		BankHeadless:        true,
	}
}

// FilePath is the config file in use; PROPDESK_CONFIG overrides the default.
func FilePath() string {
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		return p
	}
	return defaultConfigFilePath
}

func newViper() *viper.Viper {
	d := defaults()
	v := viper.New()
	v.SetDefault("port", d.Port)
	v.SetDefault("database_path", d.DatabasePath)
	v.SetDefault("locale", d.Locale)
	v.SetDefault("preview_horizon_days", d.PreviewHorizonDays)
	v.SetDefault("default_sample_charge", d.DefaultSampleCharge)
	v.SetDefault("statement_folder_path", d.StatementFolderPath)
	v.SetDefault("statement_encoding", d.StatementEncoding)
	v.SetDefault("bank_portal_url", d.BankPortalURL)
	v.SetDefault("bank_user_id", d.BankUserID)
	v.SetDefault("bank_password", d.BankPassword)
	v.SetDefault("bank_headless", d.BankHeadless)

	v.SetConfigType("json")
	v.SetConfigFile(FilePath())
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the config file and PROPDESK_* environment overrides.
// A missing file is not an error; defaults are used.
func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config %s: %w", FilePath(), err)
		}
	}

	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	applyDefaults(&loaded)
	cfg = loaded
	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	applyDefaults(&newCfg)

	path := FilePath()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("port", newCfg.Port)
	v.Set("database_path", newCfg.DatabasePath)
	v.Set("locale", newCfg.Locale)
	v.Set("preview_horizon_days", newCfg.PreviewHorizonDays)
	v.Set("default_sample_charge", newCfg.DefaultSampleCharge)
	v.Set("statement_folder_path", newCfg.StatementFolderPath)
	v.Set("statement_encoding", newCfg.StatementEncoding)
	v.Set("bank_portal_url", newCfg.BankPortalURL)
	v.Set("bank_user_id", newCfg.BankUserID)
	v.Set("bank_password", newCfg.BankPassword)
	v.Set("bank_headless", newCfg.BankHeadless)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

func applyDefaults(c *Config) {
	d := defaults()
	if c.Port == "" {
		c.Port = d.Port
	}
	if c.DatabasePath == "" {
		c.DatabasePath = d.DatabasePath
	}
	if c.Locale == "" {
		c.Locale = d.Locale
	}
	if c.PreviewHorizonDays <= 0 {
		c.PreviewHorizonDays = d.PreviewHorizonDays
	}
	if c.DefaultSampleCharge == "" {
		c.DefaultSampleCharge = d.DefaultSampleCharge
	}
	if c.StatementEncoding == "" {
		c.StatementEncoding = d.StatementEncoding
	}
}
