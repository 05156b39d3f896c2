package config

import (
	"errors"
	"strings"
	"time"
)

const (
	defaultPort         = 55555
	defaultMonPort      = 8888
	defaultServiceName  = "messenger-webhook"
	defaultGraphAPIURL  = "https://graph.facebook.com/v2.6"
	defaultReplyTopic   = "messenger.replies"
	defaultSendTimeout  = 10 * time.Second
	defaultDedupTTL     = 10 * time.Minute
	defaultLogLevel     = "info"
	defaultConsumerName = "messenger-webhook-replies"
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// PageAccessToken authenticates calls to the Send API.
	PageAccessToken string `env:"PAGE_ACCESS_TOKEN"`
	// VerifyToken is the shared secret of the subscription handshake.
	VerifyToken string `env:"VERIFY_TOKEN"`
	// AppSecret enables X-Hub-Signature-256 checks when set.
	AppSecret   string        `env:"APP_SECRET"`
	GraphAPIURL string        `env:"GRAPH_API_URL"`
	SendTimeout time.Duration `env:"SEND_TIMEOUT"`

	TLSKeyFile   string `env:"TLS_KEY_FILE"`
	TLSCertFile  string `env:"TLS_CERT_FILE"`
	TLSChainFile string `env:"TLS_CHAIN_FILE"`

	KafkaBrokers  string `env:"KAFKA_BROKERS"`
	ReplyTopic    string `env:"REPLY_TOPIC"`
	ConsumerGroup string `env:"CONSUMER_GROUP"`

	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	DedupTTL      time.Duration `env:"DEDUP_TTL"`
}

// ApplyDefaults fills every unset optional field.
func (s *Settings) ApplyDefaults() {
	if s.Port == 0 {
		s.Port = defaultPort
	}
	if s.MonPort == 0 {
		s.MonPort = defaultMonPort
	}
	if s.LogLevel == "" {
		s.LogLevel = defaultLogLevel
	}
	if s.ServiceName == "" {
		s.ServiceName = defaultServiceName
	}
	if s.GraphAPIURL == "" {
		s.GraphAPIURL = defaultGraphAPIURL
	}
	s.GraphAPIURL = strings.TrimSuffix(s.GraphAPIURL, "/")
	if s.SendTimeout <= 0 {
		s.SendTimeout = defaultSendTimeout
	}
	if s.ReplyTopic == "" {
		s.ReplyTopic = defaultReplyTopic
	}
	if s.ConsumerGroup == "" {
		s.ConsumerGroup = defaultConsumerName
	}
	if s.DedupTTL <= 0 {
		s.DedupTTL = defaultDedupTTL
	}
}

// Validate reports missing secrets and half-configured TLS.
func (s *Settings) Validate() error {
	var errs []error
	if s.PageAccessToken == "" {
		errs = append(errs, errors.New("PAGE_ACCESS_TOKEN is required"))
	}
	if s.VerifyToken == "" {
		errs = append(errs, errors.New("VERIFY_TOKEN is required"))
	}
	if (s.TLSKeyFile == "") != (s.TLSCertFile == "") {
		errs = append(errs, errors.New("TLS_KEY_FILE and TLS_CERT_FILE must be set together"))
	}
	if s.TLSChainFile != "" && s.TLSCertFile == "" {
		errs = append(errs, errors.New("TLS_CHAIN_FILE requires TLS_CERT_FILE"))
	}
	return errors.Join(errs...)
}

// TLSEnabled is true when the API should terminate TLS itself.
func (s *Settings) TLSEnabled() bool {
	return s.TLSCertFile != "" && s.TLSKeyFile != ""
}

// Brokers splits KafkaBrokers; an empty result selects the in-process outbox.
func (s *Settings) Brokers() []string {
	var brokers []string
	for _, b := range strings.Split(s.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
