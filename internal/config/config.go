package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Liferay   LiferayConfig   `yaml:"liferay"`
	WordPress WordPressConfig `yaml:"wordpress"`
	Migration MigrationConfig `yaml:"migration"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	LogLevel  string          `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

// DSN builds a go-sql-driver/mysql connection string. parseTime is required
// so DATETIME columns scan into time.Time.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		d.User, d.Password, d.Host, d.Port, d.DBName,
	)
}

type LiferayConfig struct {
	CompanyID     int64  `yaml:"company_id"`
	GroupID       int64  `yaml:"group_id"`
	DefaultLocale string `yaml:"default_locale"`
	BaseURL       string `yaml:"base_url"`
}

type WordPressConfig struct {
	BaseURL       string            `yaml:"base_url"`
	Username      string            `yaml:"username"`
	AppPassword   string            `yaml:"app_password"`
	PostType      string            `yaml:"post_type"`
	DefaultStatus string            `yaml:"default_status"`
	Timeout       time.Duration     `yaml:"timeout"`
	Retry         RetryConfig       `yaml:"retry"`
	AuthorMap     map[int64]int     `yaml:"author_map"`
	TemplateMap   map[string]string `yaml:"template_map"`
	CollectionMap map[string]string `yaml:"collection_map"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type MigrationConfig struct {
	BatchSize           int      `yaml:"batch_size"`
	OnlyApproved        bool     `yaml:"only_approved"`
	ExcludeStructureIDs []string `yaml:"exclude_structure_ids"`
	StateFile           string   `yaml:"state_file"`
}

// RabbitMQConfig is optional: an empty URL disables event publishing.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Database.Port == 0 {
		c.Database.Port = 3306
	}
	if c.Liferay.DefaultLocale == "" {
		c.Liferay.DefaultLocale = "it_IT"
	}
	if c.WordPress.PostType == "" {
		c.WordPress.PostType = "posts"
	}
	if c.WordPress.DefaultStatus == "" {
		c.WordPress.DefaultStatus = "draft"
	}
	if c.WordPress.Timeout == 0 {
		c.WordPress.Timeout = 60 * time.Second
	}
	if c.WordPress.Retry.MaxAttempts == 0 {
		c.WordPress.Retry.MaxAttempts = 3
	}
	if c.WordPress.Retry.InitialBackoff == 0 {
		c.WordPress.Retry.InitialBackoff = 2 * time.Second
	}
	if c.WordPress.Retry.MaxBackoff == 0 {
		c.WordPress.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Migration.BatchSize == 0 {
		c.Migration.BatchSize = 50
	}
	if c.Migration.StateFile == "" {
		c.Migration.StateFile = "migration_state.json"
	}
	if c.RabbitMQ.URL != "" {
		if c.RabbitMQ.Exchange == "" {
			c.RabbitMQ.Exchange = "liferay2wp"
		}
		if c.RabbitMQ.RoutingKey == "" {
			c.RabbitMQ.RoutingKey = "migrated"
		}
		if c.RabbitMQ.QueueName == "" {
			c.RabbitMQ.QueueName = "wp_migrated_posts"
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
