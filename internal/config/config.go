package config

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Graph      Graph      `yaml:"graph"`
	Sync       Sync       `yaml:"sync"`
	Broker     Broker     `yaml:"broker"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"room_booker"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Graph holds the service-principal credentials for the calendar provider.
type Graph struct {
	TenantID     string        `yaml:"tenant_id" env:"GRAPH_TENANT_ID"`
	ClientID     string        `yaml:"client_id" env:"GRAPH_CLIENT_ID"`
	ClientSecret string        `yaml:"client_secret" env:"GRAPH_CLIENT_SECRET"`
	BaseURL      string        `yaml:"base_url" env:"GRAPH_BASE_URL" env-default:"https://graph.microsoft.com/v1.0"`
	Timeout      time.Duration `yaml:"timeout" env-default:"15s"`
}

type Sync struct {
	PublicBaseURL       string        `yaml:"public_base_url" env:"PUBLIC_BASE_URL"`
	WebhookPath         string        `yaml:"webhook_path" env-default:"/webhooks/graph"`
	SubscriptionMinutes int           `yaml:"subscription_minutes" env-default:"4230"`
	RenewalInterval     time.Duration `yaml:"renewal_interval" env-default:"1h"`
	RenewalLookahead    time.Duration `yaml:"renewal_lookahead" env-default:"12h"`
	StartupDelay        time.Duration `yaml:"startup_delay" env-default:"30s"`
	ResyncWindow        time.Duration `yaml:"resync_window" env-default:"720h"`
	QueueSize           int           `yaml:"queue_size" env-default:"64"`
	QueueWorkers        int           `yaml:"queue_workers" env-default:"2"`
}

type Broker struct {
	URL      string `yaml:"url" env:"RABBIT_URL"`
	Exchange string `yaml:"exchange" env-default:"room-booker.changes"`
}

// Configured reports whether all provider credentials are present.
func (g Graph) Configured() bool {
	return g.TenantID != "" && g.ClientID != "" && g.ClientSecret != ""
}

// NotificationURL is the public address the provider posts change notifications to.
func (s Sync) NotificationURL() string {
	if s.PublicBaseURL == "" {
		return ""
	}
	return strings.TrimRight(s.PublicBaseURL, "/") + s.WebhookPath
}

// SyncEnabled reports whether calendar sync can run at all.
func (c *Config) SyncEnabled() bool {
	return c.Graph.Configured() && c.Sync.PublicBaseURL != ""
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		log.Fatal("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
