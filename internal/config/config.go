// Package config holds the storefront service configuration and its loader.
package config

import (
	"fmt"
	"strings"

	"github.com/Allison-thonio/TTTSL/internal/checkout"
)

var _ Validator = (*Config)(nil)

type Config struct {
	HTTPServer HTTPConfig      `koanf:"server"`
	Store      StoreConfig     `koanf:"store"`
	Log        LogConfig       `koanf:"log"`
	PProf      PProfConfig     `koanf:"pprof"`
	Shutdown   ShutdownConfig  `koanf:"shutdown"`
	Checkout   checkout.Config `koanf:"checkout"`
	Stripe     StripeConfig    `koanf:"stripe"`
	Admin      AdminConfig     `koanf:"admin"`
	CORS       CORSConfig      `koanf:"cors"`
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Server Configuration ---\n")
	b.WriteString(fmt.Sprintf("  server.port: %d\n", c.HTTPServer.Port))
	b.WriteString(fmt.Sprintf("  server.maxHeaderBytes: %d\n", c.HTTPServer.MaxHeaderBytes))
	b.WriteString(fmt.Sprintf("  server.timeout.read: %v\n", c.HTTPServer.Timeout.Read))
	b.WriteString(fmt.Sprintf("  server.timeout.write: %v\n", c.HTTPServer.Timeout.Write))
	b.WriteString(fmt.Sprintf("  server.timeout.idle: %v\n", c.HTTPServer.Timeout.Idle))
	b.WriteString(fmt.Sprintf("  server.timeout.readHeader: %v\n", c.HTTPServer.Timeout.ReadHeader))

	b.WriteString("\n--- Store Configuration ---\n")
	b.WriteString(fmt.Sprintf("  store.path: %s\n", c.Store.Path))

	b.WriteString("\n--- Checkout Configuration ---\n")
	b.WriteString(fmt.Sprintf("  checkout.currency: %s\n", c.Checkout.Currency))
	b.WriteString(fmt.Sprintf("  checkout.successUrl: %s\n", c.Checkout.SuccessURL))
	b.WriteString(fmt.Sprintf("  checkout.cancelUrl: %s\n", c.Checkout.CancelURL))
	b.WriteString(fmt.Sprintf("  stripe.key: %s\n", maskSecret(c.Stripe.Key)))
	b.WriteString(fmt.Sprintf("  admin.token: %s\n", maskSecret(c.Admin.Token)))

	b.WriteString("\n--- Observability & Logging ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))
	b.WriteString(fmt.Sprintf("  pprof.enabled: %t\n", c.PProf.Enabled))
	b.WriteString(fmt.Sprintf("  pprof.address: %s\n", c.PProf.Addr))

	b.WriteString("\n--- Application Behavior ---\n")
	b.WriteString(fmt.Sprintf("  cors.allowedOrigins: %v\n", c.CORS.AllowedOrigins))
	b.WriteString(fmt.Sprintf("  shutdown.timeout: %s\n", c.Shutdown.Timeout))

	return b.String()
}

// maskSecret hides a credential, keeping just enough of the prefix to tell
// test keys from live ones.
func maskSecret(secret string) string {
	if secret == "" {
		return "<not configured>"
	}
	if len(secret) > 8 {
		return secret[:8] + "****"
	}
	return "****"
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.HTTPServer.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.PProf.Validate(); err != nil {
		return err
	}
	if err := c.Shutdown.Validate(); err != nil {
		return err
	}
	if err := c.Checkout.Validate(); err != nil {
		return err
	}
	if err := c.Stripe.Validate(); err != nil {
		return err
	}
	if err := c.Admin.Validate(); err != nil {
		return err
	}
	return c.CORS.Validate()
}
