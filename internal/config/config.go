package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Driver   string `yaml:"driver"` // mysql | postgres
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslMode"`
	} `yaml:"database"`

	Minio struct {
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"minio"`

	OpenAI struct {
		APIKey          string `yaml:"apiKey"`
		Model           string `yaml:"model"`
		TimeoutSeconds  int    `yaml:"timeoutSeconds"`
		MaxOutputTokens int    `yaml:"maxOutputTokens"`
	} `yaml:"openai"`

	Analysis struct {
		MaxConcurrency    int `yaml:"maxConcurrency"`
		ContentCharBudget int `yaml:"contentCharBudget"`
		MaxRetries        int `yaml:"maxRetries"`
	} `yaml:"analysis"`
}

// Load reads the yaml config file and applies defaults. The OpenAI API key
// may be left empty; the pipeline then runs entirely on the fallback path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "mysql"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.OpenAI.TimeoutSeconds <= 0 {
		c.OpenAI.TimeoutSeconds = 30
	}
	if c.OpenAI.MaxOutputTokens <= 0 {
		c.OpenAI.MaxOutputTokens = 2048
	}
	if c.Analysis.MaxConcurrency <= 0 {
		c.Analysis.MaxConcurrency = 8
	}
	if c.Analysis.ContentCharBudget <= 0 {
		c.Analysis.ContentCharBudget = 6000
	}
	if c.Analysis.MaxRetries < 0 || c.Analysis.MaxRetries > 1 {
		c.Analysis.MaxRetries = 1
	}
}

// GenerationTimeout returns the per-call deadline for the generation client.
func (c *Config) GenerationTimeout() time.Duration {
	return time.Duration(c.OpenAI.TimeoutSeconds) * time.Second
}

// MySQLDSN builds the DSN for the mysql driver.
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

// PostgresDSN builds the DSN for the lib/pq driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
