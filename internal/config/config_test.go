package config

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Server.Port != 20270 {
		t.Fatalf("port got=%d want=20270", cfg.Server.Port)
	}
	if cfg.Data.DataDir != "data" {
		t.Fatalf("dataDir got=%s", cfg.Data.DataDir)
	}
	if cfg.Delegation.DelegationType != "long-term" || cfg.Delegation.Currency != "USD" {
		t.Fatalf("delegation defaults got=%+v", cfg.Delegation)
	}
	if len(cfg.Delegation.Content) != 5 {
		t.Fatalf("content got=%d want=5", len(cfg.Delegation.Content))
	}
}

func TestMapperDefaults(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Delegation.TradeMode = "来料加工"
	cfg.Delegation.Currency = "CNY"

	defaults := cfg.MapperDefaults()
	if defaults.TradeMode != "来料加工" || defaults.Currency != "CNY" {
		t.Fatalf("defaults got=%+v", defaults)
	}
	if defaults.ValidityPeriod != "12" {
		t.Fatalf("validityPeriod got=%s", defaults.ValidityPeriod)
	}
}

func TestConfigTomlRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Server.Port = 9999
	cfg.Server.DevMode = true
	cfg.Delegation.Origin = "越南"

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}

	var loaded AppConfig
	if err := toml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}

	if loaded.Server.Port != 9999 || !loaded.Server.DevMode {
		t.Fatalf("server got=%+v", loaded.Server)
	}
	if loaded.Delegation.Origin != "越南" {
		t.Fatalf("origin got=%s", loaded.Delegation.Origin)
	}
	if len(loaded.Delegation.Content) != 5 {
		t.Fatalf("content got=%d want=5", len(loaded.Delegation.Content))
	}
}

func TestPartialTomlKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	partial := []byte("[server]\nport = 8080\n")
	if err := toml.Unmarshal(partial, cfg); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("port got=%d want=8080", cfg.Server.Port)
	}
	// 未出现的配置段保留默认值
	if cfg.Delegation.Currency != "USD" || cfg.Data.DataDir != "data" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}
