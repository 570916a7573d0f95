package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/noticrawl/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// push delivery modes
const (
	PushModeToken = "token"
	PushModeTopic = "topic"
)

// Config holds the application configuration
type Config struct {
	Boards []Board `yaml:"boards" json:"boards" jsonschema:"minItems=1,description=Notice boards to crawl in crawl order"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:noticrawl.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string (sqlite file or postgres:// url)"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Crawler CrawlerConfig `yaml:"crawler" json:"crawler" jsonschema:"description=Feed fetching and deduplication"`

	Push PushConfig `yaml:"push" json:"push" jsonschema:"description=Push notification delivery"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Article text extraction for entries without description"`

	Schedule struct {
		Interval time.Duration `yaml:"interval" json:"interval" jsonschema:"default=10m,description=Interval between crawl runs in service mode"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"description=HTTP server listen address, empty disables the server"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Status server configuration"`
}

// Board defines a single notice board feed
type Board struct {
	ID   string `yaml:"id" json:"id" jsonschema:"required,description=Unique board id used in storage and push payloads"`
	URL  string `yaml:"url" json:"url" jsonschema:"required,description=RSS feed url"`
	Name string `yaml:"name" json:"name" jsonschema:"description=Display name used in notification titles"`
}

// CrawlerConfig holds feed fetching settings
type CrawlerConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed request timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Noticrawl/1.0,description=User agent for HTTP requests"`
	Retries   int           `yaml:"retries" json:"retries" jsonschema:"default=3,minimum=1,description=Feed fetch attempts on transient errors"`
	FullScan  bool          `yaml:"full_scan" json:"full_scan" jsonschema:"default=false,description=Check every feed entry instead of stopping on the first seen one"`
}

// PushConfig holds firebase messaging settings
type PushConfig struct {
	Mode            string `yaml:"mode" json:"mode" jsonschema:"default=token,enum=token,enum=topic,description=Deliver to subscriber tokens or to board topics"`
	CredentialsFile string `yaml:"credentials_file" json:"credentials_file" jsonschema:"description=Firebase service account file"`
	CredentialsJSON string `yaml:"credentials_json" json:"credentials_json" jsonschema:"description=Firebase service account json (can use environment variable)"`
	ProjectID       string `yaml:"project_id" json:"project_id" jsonschema:"description=Firebase project id, taken from credentials if empty"`
	TopicPrefix     string `yaml:"topic_prefix" json:"topic_prefix" jsonschema:"default=board-,description=Topic name prefix in topic mode"`
	BodyLimit       int    `yaml:"body_limit" json:"body_limit" jsonschema:"default=100,minimum=1,description=Maximum characters of notification body"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable content extraction"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=20,description=Minimum text length to consider valid"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:noticrawl.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for crawler
	if cfg.Crawler.Timeout == 0 {
		cfg.Crawler.Timeout = 30 * time.Second
	}
	if cfg.Crawler.UserAgent == "" {
		cfg.Crawler.UserAgent = "Noticrawl/1.0"
	}
	if cfg.Crawler.Retries == 0 {
		cfg.Crawler.Retries = 3
	}

	// set defaults for push
	if cfg.Push.Mode == "" {
		cfg.Push.Mode = PushModeToken
	}
	if cfg.Push.TopicPrefix == "" {
		cfg.Push.TopicPrefix = "board-"
	}
	if cfg.Push.BodyLimit == 0 {
		cfg.Push.BodyLimit = 100
	}

	// set defaults for extraction
	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 30 * time.Second
	}
	if cfg.Extraction.MinTextLength == 0 {
		cfg.Extraction.MinTextLength = 20
	}

	// set defaults for schedule and server
	if cfg.Schedule.Interval == 0 {
		cfg.Schedule.Interval = 10 * time.Minute
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if len(cfg.Boards) == 0 {
		return errors.New("at least one board is required")
	}
	ids := make(map[string]struct{}, len(cfg.Boards))
	for i, b := range cfg.Boards {
		if b.ID == "" {
			return fmt.Errorf("boards[%d].id is required", i)
		}
		if b.URL == "" {
			return fmt.Errorf("boards[%d].url is required for board %s", i, b.ID)
		}
		if u, err := url.Parse(b.URL); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("boards[%d].url %q is not a valid url", i, b.URL)
		}
		if _, ok := ids[b.ID]; ok {
			return fmt.Errorf("duplicate board id %s", b.ID)
		}
		ids[b.ID] = struct{}{}
	}

	if cfg.Push.Mode != PushModeToken && cfg.Push.Mode != PushModeTopic {
		return fmt.Errorf("unknown push.mode %q, must be %s or %s", cfg.Push.Mode, PushModeToken, PushModeTopic)
	}
	if cfg.Push.BodyLimit < 1 {
		return errors.New("push.body_limit must be positive")
	}

	if cfg.Crawler.Timeout < time.Second {
		return errors.New("crawler timeout must be at least 1 second")
	}
	if cfg.Crawler.Retries < 1 {
		return errors.New("crawler retries must be at least 1")
	}

	// validate extraction config
	if cfg.Extraction.Enabled {
		if cfg.Extraction.Timeout < time.Second {
			return errors.New("extraction timeout must be at least 1 second")
		}
		if cfg.Extraction.MinTextLength < 0 {
			return errors.New("extraction min_text_length must be non-negative")
		}
	}

	if cfg.Schedule.Interval < time.Second {
		return errors.New("schedule interval must be at least 1 second")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return errors.New("server timeout must be at least 1 second")
	}

	return nil
}

// DomainBoards returns configured boards in crawl order
func (c *Config) DomainBoards() []domain.Board {
	res := make([]domain.Board, len(c.Boards))
	for i, b := range c.Boards {
		res[i] = domain.Board{ID: b.ID, URL: b.URL, Name: b.Name}
	}
	return res
}

// PushEnabled reports whether firebase credentials are configured
func (c *Config) PushEnabled() bool {
	return c.Push.CredentialsFile != "" || c.Push.CredentialsJSON != ""
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
