package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"notion-share-sync/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Notion share specifics
	Notion  NotionConfig
	Share   ShareConfig
	Trigger TriggerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type NotionConfig struct {
	APIKey          string
	BaseURL         string
	APIVersion      string
	Timeout         time.Duration // 0 disables
	WorkspaceDomain string        // public pages live under https://<domain>.notion.site
}

// CategoryConfig is one record database and the project heading its links go under.
type CategoryConfig struct {
	DatabaseID string
	Heading    string
}

type PropertiesConfig struct {
	Status  string
	Trigger string
	Project string
}

type StatusesConfig struct {
	Unshared string
	Shared   string
	Failed   string
}

type ShareConfig struct {
	Minutes    CategoryConfig
	Manual     CategoryConfig
	Properties PropertiesConfig
	Statuses   StatusesConfig
}

type TriggerConfig struct {
	SingleFlight    bool
	RateLimitPerMin int
	AllowedIPs      []string
	TrustedProxies  []string // only these peers may set X-Forwarded-For / X-Real-IP
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration from path, or from the default search paths when path is empty.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Notion
	cfg.Notion.APIKey = v.GetString("notion.api_key")
	cfg.Notion.BaseURL = v.GetString("notion.base_url")
	cfg.Notion.APIVersion = v.GetString("notion.api_version")
	cfg.Notion.Timeout = v.GetDuration("notion.timeout")
	cfg.Notion.WorkspaceDomain = v.GetString("notion.workspace_domain")
	if domain := v.GetString("workspace_domain"); domain != "" {
		cfg.Notion.WorkspaceDomain = domain
	}

	// Share
	cfg.Share.Minutes.DatabaseID = v.GetString("share.minutes.database_id")
	if id := v.GetString("minutes_database_id"); id != "" {
		cfg.Share.Minutes.DatabaseID = id
	}
	cfg.Share.Minutes.Heading = v.GetString("share.minutes.heading")
	cfg.Share.Manual.DatabaseID = v.GetString("share.manual.database_id")
	if id := v.GetString("manual_database_id"); id != "" {
		cfg.Share.Manual.DatabaseID = id
	}
	cfg.Share.Manual.Heading = v.GetString("share.manual.heading")

	cfg.Share.Properties.Status = v.GetString("share.properties.status")
	cfg.Share.Properties.Trigger = v.GetString("share.properties.trigger")
	cfg.Share.Properties.Project = v.GetString("share.properties.project")
	cfg.Share.Statuses.Unshared = v.GetString("share.statuses.unshared")
	cfg.Share.Statuses.Shared = v.GetString("share.statuses.shared")
	cfg.Share.Statuses.Failed = v.GetString("share.statuses.failed")

	// Trigger
	cfg.Trigger.SingleFlight = v.GetBool("trigger.single_flight")
	cfg.Trigger.RateLimitPerMin = v.GetInt("trigger.rate_limit_per_min")
	cfg.Trigger.AllowedIPs = splitList(v.Get("trigger.allowed_ips"))
	cfg.Trigger.TrustedProxies = splitList(v.Get("trigger.trusted_proxies"))

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", false)

	v.SetDefault("notion.base_url", "https://api.notion.com")
	v.SetDefault("notion.api_version", "2022-06-28")
	v.SetDefault("notion.timeout", "0s")

	v.SetDefault("share.minutes.heading", "議事録一覧")
	v.SetDefault("share.manual.heading", "マニュアル一覧")
	v.SetDefault("share.properties.status", "共有状況")
	v.SetDefault("share.properties.trigger", "共有する")
	v.SetDefault("share.properties.project", "Project")
	v.SetDefault("share.statuses.unshared", "未共有")
	v.SetDefault("share.statuses.shared", "共有済")
	v.SetDefault("share.statuses.failed", "共有失敗")

	v.SetDefault("trigger.single_flight", false)
	v.SetDefault("trigger.rate_limit_per_min", 0)
}

// splitList accepts a YAML list or a comma separated string (as env vars arrive).
func splitList(raw any) []string {
	var parts []string
	switch val := raw.(type) {
	case string:
		parts = strings.Split(val, ",")
	case []any:
		for _, item := range val {
			parts = append(parts, fmt.Sprint(item))
		}
	case []string:
		parts = val
	}

	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (cfg *Config) validate() error {
	var missing []string
	if cfg.Notion.APIKey == "" {
		missing = append(missing, "notion.api_key")
	}
	if cfg.Notion.WorkspaceDomain == "" {
		missing = append(missing, "notion.workspace_domain")
	}
	if cfg.Share.Minutes.DatabaseID == "" {
		missing = append(missing, "share.minutes.database_id")
	}
	if cfg.Share.Manual.DatabaseID == "" {
		missing = append(missing, "share.manual.database_id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}

	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("invalid http_server.port: %d", cfg.HTTPServer.Port)
	}
	if cfg.Notion.Timeout < 0 {
		return fmt.Errorf("invalid notion.timeout: %s", cfg.Notion.Timeout)
	}
	if cfg.Trigger.RateLimitPerMin < 0 {
		return fmt.Errorf("invalid trigger.rate_limit_per_min: %d", cfg.Trigger.RateLimitPerMin)
	}

	labels := map[string]string{}
	for key, label := range map[string]string{
		"share.statuses.unshared": cfg.Share.Statuses.Unshared,
		"share.statuses.shared":   cfg.Share.Statuses.Shared,
		"share.statuses.failed":   cfg.Share.Statuses.Failed,
	} {
		if label == "" {
			return fmt.Errorf("missing required config: %s", key)
		}
		if other, ok := labels[label]; ok {
			return fmt.Errorf("%s and %s share the label %q", other, key, label)
		}
		labels[label] = key
	}

	return nil
}

// Categories returns the record categories in run order: minutes, then manual.
func (cfg *Config) Categories() []model.Category {
	return []model.Category{
		{Name: model.CategoryMinutes, DatabaseID: cfg.Share.Minutes.DatabaseID, Heading: cfg.Share.Minutes.Heading},
		{Name: model.CategoryManual, DatabaseID: cfg.Share.Manual.DatabaseID, Heading: cfg.Share.Manual.Heading},
	}
}

// StatusLabels maps each share status to its select option label.
func (cfg *Config) StatusLabels() map[model.ShareStatus]string {
	return map[model.ShareStatus]string{
		model.StatusUnshared:    cfg.Share.Statuses.Unshared,
		model.StatusShared:      cfg.Share.Statuses.Shared,
		model.StatusShareFailed: cfg.Share.Statuses.Failed,
	}
}
