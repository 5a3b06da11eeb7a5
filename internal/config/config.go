package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Root     string `env:"GOVBOT_ROOT" envDefault:"."`
	LogLevel string `env:"GOVBOT_LOG_LEVEL" envDefault:"info"`
	NoColor  string `env:"NO_COLOR"`

	GitHub  GitHubConfig  `envPrefix:"GOVBOT_GITHUB_"`
	Archive ArchiveConfig `envPrefix:"GOVBOT_ARCHIVE_"`
}

type GitHubConfig struct {
	Token      string `env:"TOKEN"`
	Repository string `env:"REPOSITORY,expand" envDefault:"${GITHUB_REPOSITORY}"` // owner/repo
	PRNumber   int    `env:"PR_NUMBER"`
}

type ArchiveConfig struct {
	Endpoint  string `env:"ENDPOINT"`
	Region    string `env:"REGION" envDefault:"us-east-1"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET" envDefault:"docs-governance-reports"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"true"`
	RunID     string `env:"RUN_ID,expand" envDefault:"${GITHUB_RUN_ID}"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c GitHubConfig) Enabled() bool {
	return c.Token != "" && c.Repository != "" && c.PRNumber > 0
}

func (c GitHubConfig) OwnerRepo() (string, string, error) {
	owner, repo, ok := strings.Cut(c.Repository, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/repo", c.Repository)
	}
	return owner, repo, nil
}

func (c ArchiveConfig) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != ""
}

func (c *Config) ColorDisabled() bool {
	return c.NoColor != ""
}
