// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"flag"
	"os"
	"strconv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// FilePath is the path to the journal file for the file-backed store.
	FilePath string

	// DatabaseDSN holds the Postgres connection string.
	DatabaseDSN string

	// RedisAddr is the host:port of the redirect cache; empty disables caching.
	RedisAddr string

	// RedisPassword authenticates against the cache, if required.
	RedisPassword string

	// RedisDB selects the redis logical database.
	RedisDB int

	// CacheTTLSecs is the redirect cache entry lifetime in seconds.
	CacheTTLSecs int

	// WebhookTimeoutSecs bounds a single webhook delivery attempt.
	WebhookTimeoutSecs int

	// WebhookMaxConcurrent caps in-flight webhook deliveries.
	WebhookMaxConcurrent int

	// TrustedSubnet is the CIDR allowed to call /internal/stats.
	TrustedSubnet string

	// JWTSecret signs the guest token cookie.
	JWTSecret string

	// EnablePprof indicates whether to enable pprof for performance profiling.
	EnablePprof bool

	// EnableHTTPS indicates whether to enable https.
	EnableHTTPS bool
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.FilePath, "f", "", "path to storage file")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.RedisAddr, "r", "", "redis address (empty disables the redirect cache)")
	flag.StringVar(&options.RedisPassword, "redis-password", "", "redis password")
	flag.IntVar(&options.RedisDB, "redis-db", 0, "redis database number")
	flag.IntVar(&options.CacheTTLSecs, "cache-ttl", 3600, "redirect cache TTL in seconds")
	flag.IntVar(&options.WebhookTimeoutSecs, "webhook-timeout", 10, "webhook delivery timeout in seconds")
	flag.IntVar(&options.WebhookMaxConcurrent, "webhook-concurrency", 100, "max in-flight webhook deliveries")
	flag.StringVar(&options.TrustedSubnet, "t", "", "trusted subnet CIDR for internal endpoints")
	flag.StringVar(&options.JWTSecret, "jwt-secret", "", "secret for guest token signing")
	flag.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	flag.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. Environment variables win over flags.
func Parse() *Options {
	flag.Parse()

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}

	if storagePath := os.Getenv("FILE_STORAGE_PATH"); storagePath != "" {
		options.FilePath = storagePath
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}

	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		options.RedisAddr = redisAddr
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		options.RedisPassword = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if n, err := strconv.Atoi(redisDB); err == nil {
			options.RedisDB = n
		}
	}

	if ttl := os.Getenv("CACHE_TTL_SECS"); ttl != "" {
		if n, err := strconv.Atoi(ttl); err == nil {
			options.CacheTTLSecs = n
		}
	}

	if timeout := os.Getenv("WEBHOOK_TIMEOUT_SECS"); timeout != "" {
		if n, err := strconv.Atoi(timeout); err == nil {
			options.WebhookTimeoutSecs = n
		}
	}

	if concurrency := os.Getenv("WEBHOOK_MAX_CONCURRENT"); concurrency != "" {
		if n, err := strconv.Atoi(concurrency); err == nil {
			options.WebhookMaxConcurrent = n
		}
	}

	if subnet := os.Getenv("TRUSTED_SUBNET"); subnet != "" {
		options.TrustedSubnet = subnet
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		options.JWTSecret = secret
	}

	if enableHTTPS := os.Getenv("ENABLE_HTTPS"); enableHTTPS != "" {
		httpMode, err := strconv.ParseBool(enableHTTPS)
		if err != nil {
			options.EnableHTTPS = false
		}

		options.EnableHTTPS = httpMode
	}

	return options
}
