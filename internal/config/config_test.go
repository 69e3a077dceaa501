package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NodeURL != "https://fullnode.devnet.aptoslabs.com/v1" {
		t.Errorf("NodeURL = %q", cfg.NodeURL)
	}
	if cfg.Network != "devnet" {
		t.Errorf("Network = %q", cfg.Network)
	}
	if cfg.ModuleAddress != "0x1" {
		t.Errorf("ModuleAddress = %q", cfg.ModuleAddress)
	}
	if cfg.AIAPIKey != "" {
		t.Errorf("AIAPIKey = %q, want empty default", cfg.AIAPIKey)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AGORA_NODE_URL", "http://localhost:8080/v1")
	t.Setenv("AGORA_NETWORK", "local")
	t.Setenv("AGORA_MODULE_ADDRESS", "0xcafe")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NodeURL != "http://localhost:8080/v1" {
		t.Errorf("NodeURL = %q", cfg.NodeURL)
	}
	if cfg.Network != "local" || cfg.ModuleAddress != "0xcafe" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadModuleAddress(t *testing.T) {
	t.Setenv("AGORA_MODULE_ADDRESS", "cafe")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for module address without 0x prefix")
	}
}

func TestExplorerURLs(t *testing.T) {
	cfg := &Config{ExplorerURL: "https://explorer.aptoslabs.com/", Network: "testnet"}
	if got := cfg.TransactionURL("0xabc"); got != "https://explorer.aptoslabs.com/txn/0xabc?network=testnet" {
		t.Errorf("TransactionURL = %q", got)
	}
	if got := cfg.AccountURL("0xdef"); got != "https://explorer.aptoslabs.com/account/0xdef?network=testnet" {
		t.Errorf("AccountURL = %q", got)
	}
}
