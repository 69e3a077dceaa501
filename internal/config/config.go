// Package config resolves environment-level configuration once at process
// start. All options fall back to public development endpoints so the SDK
// works out of the box against devnet.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the runtime configuration for the AptosAgora SDK.
// Environment variables are parsed from the AGORA_ prefix.
type Config struct {
	// NodeURL is the fullnode REST endpoint used for submissions and views.
	NodeURL string `envconfig:"NODE_URL" default:"https://fullnode.devnet.aptoslabs.com/v1"`

	// Network names the chain the node serves (devnet, testnet, mainnet, local).
	Network string `envconfig:"NETWORK" default:"devnet"`

	// ModuleAddress is the deployed AptosAgora module address. The default is
	// a placeholder suitable only for local experimentation.
	ModuleAddress string `envconfig:"MODULE_ADDRESS" default:"0x1"`

	// ExplorerURL is the block-explorer base used to build share links.
	ExplorerURL string `envconfig:"EXPLORER_URL" default:"https://explorer.aptoslabs.com"`

	// AIEndpoint is the chat-completion endpoint for the advisory client.
	AIEndpoint string `envconfig:"AI_ENDPOINT" default:"https://api.openai.com/v1/chat/completions"`

	// AIAPIKey authenticates advisory requests. Empty disables the advisor.
	AIAPIKey string `envconfig:"AI_API_KEY" default:""`
}

// Load parses configuration from the environment, applying defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("AGORA", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields that every consumer depends on.
func (c *Config) Validate() error {
	if c.NodeURL == "" {
		return fmt.Errorf("config: node URL is required")
	}
	if c.ModuleAddress == "" || !strings.HasPrefix(c.ModuleAddress, "0x") {
		return fmt.Errorf("config: module address %q must be 0x-prefixed", c.ModuleAddress)
	}
	return nil
}

// TransactionURL returns the explorer link for a transaction hash.
func (c *Config) TransactionURL(txHash string) string {
	return fmt.Sprintf("%s/txn/%s?network=%s", strings.TrimRight(c.ExplorerURL, "/"), txHash, c.Network)
}

// AccountURL returns the explorer link for an account address.
func (c *Config) AccountURL(address string) string {
	return fmt.Sprintf("%s/account/%s?network=%s", strings.TrimRight(c.ExplorerURL, "/"), address, c.Network)
}
