package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds Redis connection settings. Upstash uses rediss:// URLs
// which require TLS.
type Config struct {
	URL      string
	Password string
}

// New dials Redis and verifies the connection with a ping. Callers that
// can run without Redis should treat an error as a soft failure.
func New(cfg Config) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("redis: no URL configured")
	}

	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	useTLS := parsed.Scheme == "rediss"
	addr := parsed.Host
	if parsed.Port() == "" {
		addr = parsed.Host + ":6379"
	}

	password := cfg.Password
	if password == "" && parsed.User != nil {
		password, _ = parsed.User.Password()
	}

	opts := &redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	}
	if useTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: connection failed: %w", err)
	}
	return client, nil
}

// HealthCheck reports whether the connection is usable.
func HealthCheck(ctx context.Context, client *redis.Client) error {
	if client == nil {
		return errors.New("redis: client not initialized")
	}
	return client.Ping(ctx).Err()
}
