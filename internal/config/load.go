package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. LS_MISSIONPLAN_LOG_LEVEL.
const EnvPrefix = "LS_MISSIONPLAN"

// Keys shared by flags, environment variables and config files.
const (
	KeyStartDate    = "start-date"
	KeyPayload      = "payload"
	KeyWindows      = "windows"
	KeyReportDir    = "report-dir"
	KeyHistory      = "history"
	KeyLogLevel     = "log-level"
	KeySessionLimit = "session-limit"
	KeyCatalog      = "catalog"
)

// Load resolves settings from, highest first: flags set on the command
// line, environment variables, the config file at path (if any), flag
// defaults and DefaultConfig. fs may be nil.
func Load(fs *pflag.FlagSet, path string) (Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault(KeyStartDate, def.StartDate)
	v.SetDefault(KeyPayload, def.PayloadKg)
	v.SetDefault(KeyWindows, def.WindowCount)
	v.SetDefault(KeyReportDir, def.ReportDir)
	v.SetDefault(KeyHistory, def.HistoryPath)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeySessionLimit, def.SessionLimit)
	v.SetDefault(KeyCatalog, def.CatalogPath)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	return Config{
		StartDate:    v.GetString(KeyStartDate),
		PayloadKg:    v.GetFloat64(KeyPayload),
		WindowCount:  v.GetInt(KeyWindows),
		ReportDir:    v.GetString(KeyReportDir),
		HistoryPath:  v.GetString(KeyHistory),
		LogLevel:     v.GetString(KeyLogLevel),
		SessionLimit: v.GetInt(KeySessionLimit),
		CatalogPath:  v.GetString(KeyCatalog),
	}, nil
}
