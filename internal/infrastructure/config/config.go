package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure shared by the producer and
// consumer binaries. All configuration is loaded from YAML and can be
// overridden by environment variables.
type Config struct {
	Broker   BrokerConfig   `yaml:"broker"`
	Topic    string         `yaml:"topic"`
	Producer ProducerConfig `yaml:"producer"`
	Consumer ConsumerConfig `yaml:"consumer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// BrokerConfig contains Pulsar broker connection settings.
type BrokerConfig struct {
	// URL is the Pulsar service URL, e.g. "pulsar://localhost:6650".
	// Use the pulsar+ssl:// scheme for TLS endpoints.
	URL string `yaml:"url"`

	// ConnectTimeout is the maximum time in seconds to wait for the
	// TCP connection to the broker to be established.
	ConnectTimeout int `yaml:"connect_timeout"`

	// OperationTimeout is the maximum time in seconds for broker
	// operations such as creating a producer or subscribing.
	OperationTimeout int `yaml:"operation_timeout"`
}

// ProducerConfig contains settings for the publish role.
type ProducerConfig struct {
	// Name identifies the producer on the broker.
	Name string `yaml:"name"`

	// TokenFile is the path to the file holding the publish-role
	// bearer token. Forward slashes are accepted on any platform.
	TokenFile string `yaml:"token_file"`
}

// ConsumerConfig contains settings for the subscribe role.
type ConsumerConfig struct {
	// Subscription is the named subscription cursor on the topic.
	Subscription string `yaml:"subscription"`

	// Name identifies the consumer on the broker.
	Name string `yaml:"name"`

	// TokenFile is the path to the file holding the consume-role
	// bearer token.
	TokenFile string `yaml:"token_file"`

	// ReceiveTimeoutMillis bounds each blocking receive so interrupt
	// signals are observed between polls.
	ReceiveTimeoutMillis int `yaml:"receive_timeout_ms"`

	// RetryDelaySeconds is the fixed pause after a non-timeout
	// receive or acknowledge error before the next poll.
	RetryDelaySeconds int `yaml:"retry_delay"`

	// LivenessIntervalSeconds is how often an idle consumer prints a
	// liveness marker while no messages arrive.
	LivenessIntervalSeconds int `yaml:"liveness_interval"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable
// overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: PULSARDEMO_SECTION_KEY
// For example: PULSARDEMO_BROKER_URL, PULSARDEMO_TOPIC
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults matching a local
// single-node Pulsar deployment.
func defaultConfig() *Config {
	return &Config{
		Broker: BrokerConfig{
			URL:              "pulsar://localhost:6650",
			ConnectTimeout:   10,
			OperationTimeout: 30,
		},
		Topic: "persistent://public/default/test-topic",
		Producer: ProducerConfig{
			Name:      "demo-producer",
			TokenFile: "tokens/producer-token.txt",
		},
		Consumer: ConsumerConfig{
			Subscription:            "demo-subscription",
			Name:                    "demo-consumer",
			TokenFile:               "tokens/consumer-token.txt",
			ReceiveTimeoutMillis:    5000,
			RetryDelaySeconds:       1,
			LivenessIntervalSeconds: 30,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables follow the pattern:
// PULSARDEMO_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PULSARDEMO_BROKER_URL"); v != "" {
		cfg.Broker.URL = v
	}
	if v := os.Getenv("PULSARDEMO_TOPIC"); v != "" {
		cfg.Topic = v
	}
	if v := os.Getenv("PULSARDEMO_PRODUCER_TOKEN_FILE"); v != "" {
		cfg.Producer.TokenFile = v
	}
	if v := os.Getenv("PULSARDEMO_CONSUMER_TOKEN_FILE"); v != "" {
		cfg.Consumer.TokenFile = v
	}
	if v := os.Getenv("PULSARDEMO_CONSUMER_SUBSCRIPTION"); v != "" {
		cfg.Consumer.Subscription = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.Broker.URL == "" {
		errs = append(errs, "broker.url is required")
	} else if !strings.HasPrefix(c.Broker.URL, "pulsar://") && !strings.HasPrefix(c.Broker.URL, "pulsar+ssl://") {
		errs = append(errs, "broker.url must use the pulsar:// or pulsar+ssl:// scheme")
	}
	if c.Broker.ConnectTimeout <= 0 {
		errs = append(errs, "broker.connect_timeout must be positive")
	}
	if c.Broker.OperationTimeout <= 0 {
		errs = append(errs, "broker.operation_timeout must be positive")
	}

	if c.Topic == "" {
		errs = append(errs, "topic is required")
	}

	if c.Producer.TokenFile == "" {
		errs = append(errs, "producer.token_file is required")
	}

	if c.Consumer.Subscription == "" {
		errs = append(errs, "consumer.subscription is required")
	}
	if c.Consumer.TokenFile == "" {
		errs = append(errs, "consumer.token_file is required")
	}
	if c.Consumer.ReceiveTimeoutMillis <= 0 {
		errs = append(errs, "consumer.receive_timeout_ms must be positive")
	}
	if c.Consumer.RetryDelaySeconds < 0 {
		errs = append(errs, "consumer.retry_delay must not be negative")
	}
	if c.Consumer.LivenessIntervalSeconds <= 0 {
		errs = append(errs, "consumer.liveness_interval must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// GetConnectTimeout returns the broker connect timeout as a Duration.
func (c *Config) GetConnectTimeout() time.Duration {
	return time.Duration(c.Broker.ConnectTimeout) * time.Second
}

// GetOperationTimeout returns the broker operation timeout as a Duration.
func (c *Config) GetOperationTimeout() time.Duration {
	return time.Duration(c.Broker.OperationTimeout) * time.Second
}

// GetReceiveTimeout returns the consumer receive timeout as a Duration.
func (c *Config) GetReceiveTimeout() time.Duration {
	return time.Duration(c.Consumer.ReceiveTimeoutMillis) * time.Millisecond
}

// GetRetryDelay returns the consumer error retry delay as a Duration.
func (c *Config) GetRetryDelay() time.Duration {
	return time.Duration(c.Consumer.RetryDelaySeconds) * time.Second
}

// GetLivenessInterval returns the consumer liveness interval as a Duration.
func (c *Config) GetLivenessInterval() time.Duration {
	return time.Duration(c.Consumer.LivenessIntervalSeconds) * time.Second
}
