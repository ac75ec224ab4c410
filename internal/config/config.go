package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Quiz  QuizConfig  `yaml:"quiz"`
	Store StoreConfig `yaml:"store"`
	Log   LogConfig   `yaml:"log"`
}

// QuizConfig holds the defaults for new quizzes.
type QuizConfig struct {
	Choices       int           `yaml:"choices"        env:"VOCABQUIZ_CHOICES"        env-default:"4"`
	Direction     string        `yaml:"direction"      env:"VOCABQUIZ_DIRECTION"      env-default:"term"`
	Order         string        `yaml:"order"          env:"VOCABQUIZ_ORDER"          env-default:"random"`
	Limit         int           `yaml:"limit"          env:"VOCABQUIZ_LIMIT"          env-default:"0"`
	FeedbackDelay time.Duration `yaml:"feedback_delay" env:"VOCABQUIZ_FEEDBACK_DELAY" env-default:"1s"`
}

// StoreConfig holds result log settings.
type StoreConfig struct {
	// Disabled turns the result log off. Negative so that a zero value in
	// YAML is not replaced by an env-default.
	Disabled bool   `yaml:"disabled" env:"VOCABQUIZ_STORE_DISABLED"`
	Path     string `yaml:"path"     env:"VOCABQUIZ_DB"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"VOCABQUIZ_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"VOCABQUIZ_LOG_FORMAT" env-default:"text"`
	File   string `yaml:"file"   env:"VOCABQUIZ_LOG_FILE"`
}
