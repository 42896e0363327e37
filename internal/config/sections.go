package config

import (
	"fmt"
	"strings"
	"time"
)

type HTTPConfig struct {
	Port           int `koanf:"port"`
	MaxHeaderBytes int `koanf:"maxHeaderBytes"`
	Timeout        struct {
		Read       time.Duration `koanf:"read"`
		Write      time.Duration `koanf:"write"`
		Idle       time.Duration `koanf:"idle"`
		ReadHeader time.Duration `koanf:"readHeader"`
	} `koanf:"timeout"`
}

func (c *HTTPConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid HTTP server port: %d", c.Port)
	}
	if c.Timeout.Read <= 0 {
		return fmt.Errorf("invalid HTTP server read timeout: %v", c.Timeout.Read)
	}
	if c.Timeout.Write <= 0 {
		return fmt.Errorf("invalid HTTP server write timeout: %v", c.Timeout.Write)
	}
	if c.Timeout.Idle <= 0 {
		return fmt.Errorf("invalid HTTP server idle timeout: %v", c.Timeout.Idle)
	}
	if c.Timeout.ReadHeader <= 0 {
		return fmt.Errorf("invalid HTTP server read header timeout: %v", c.Timeout.ReadHeader)
	}
	return nil
}

// StoreConfig points at the JSON document file backing the catalog.
type StoreConfig struct {
	Path string `koanf:"path"`
}

func (c *StoreConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("store path is not configured")
	}
	return nil
}

type LogConfig struct {
	Level string `koanf:"level"`
}

func (c *LogConfig) Validate() error {
	return nil
}

type PProfConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

func (c *PProfConfig) Validate() error {
	if c.Enabled && c.Addr == "" {
		return fmt.Errorf("pprof is enabled but address is not configured")
	}
	return nil
}

type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

func (c *ShutdownConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("shutdown timeout is not configured")
	}
	return nil
}

// StripeConfig carries the secret API key. It is set process-wide at startup.
type StripeConfig struct {
	Key string `koanf:"key"`
}

func (c *StripeConfig) Validate() error {
	if c.Key == "" {
		return fmt.Errorf("stripe API key is not configured")
	}
	if !strings.HasPrefix(c.Key, "sk_") && !strings.HasPrefix(c.Key, "rk_") {
		return fmt.Errorf("stripe API key must be a secret key")
	}
	return nil
}

// AdminConfig carries the bearer token guarding catalog mutations.
type AdminConfig struct {
	Token string `koanf:"token"`
}

func (c *AdminConfig) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("admin token is not configured")
	}
	return nil
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowedOrigins"`
}

func (c *CORSConfig) Validate() error {
	return nil
}
