package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded from the environment
// (optionally seeded by a .env file).
type Config struct {
	GRPCPort int

	JournalDir      string
	SegmentSize     int64
	SegmentDuration time.Duration

	OutboxDir     string
	Brokers       []string
	EventTopic    string
	DepthTopic    string
	BroadcastTick time.Duration

	DepthLevels  int
	FeedInterval time.Duration

	RetireRingSize uint64
	EpochInterval  time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{
		GRPCPort: getEnvInt("LOB_GRPC_PORT", 50051),

		JournalDir:      getEnvString("LOB_JOURNAL_DIR", "./wal_data"),
		SegmentSize:     getEnvInt64("LOB_SEGMENT_SIZE", 2*1024*1024),
		SegmentDuration: getEnvDuration("LOB_SEGMENT_DURATION", time.Minute),

		OutboxDir:     getEnvString("LOB_OUTBOX_DIR", "./outbox_data"),
		Brokers:       getEnvList("LOB_KAFKA_BROKERS", nil),
		EventTopic:    getEnvString("LOB_EVENT_TOPIC", "book-events"),
		DepthTopic:    getEnvString("LOB_DEPTH_TOPIC", "book-depth"),
		BroadcastTick: getEnvDuration("LOB_BROADCAST_TICK", 250*time.Millisecond),

		DepthLevels:  getEnvInt("LOB_DEPTH_LEVELS", 10),
		FeedInterval: getEnvDuration("LOB_FEED_INTERVAL", time.Second),

		RetireRingSize: uint64(getEnvInt64("LOB_RETIRE_RING_SIZE", 1<<18)),
		EpochInterval:  getEnvDuration("LOB_EPOCH_INTERVAL", 2*time.Second),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Broadcast reports whether Kafka publication is configured at all.
func (c *Config) Broadcast() bool {
	return len(c.Brokers) > 0
}

func (c *Config) validate() error {
	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("config: invalid gRPC port %d", c.GRPCPort)
	}
	if c.SegmentSize <= 0 {
		return fmt.Errorf("config: invalid segment size %d", c.SegmentSize)
	}
	if c.DepthLevels <= 0 {
		return fmt.Errorf("config: invalid depth %d", c.DepthLevels)
	}
	if c.RetireRingSize&(c.RetireRingSize-1) != 0 {
		return fmt.Errorf("config: retire ring size %d is not a power of two", c.RetireRingSize)
	}
	return nil
}

// Helpers for environment variable parsing

func getEnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := parts[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return def
}
