package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/wangpeng1017/0120guanwu/internal/delegation"
)

// AppConfig 应用配置
type AppConfig struct {
	Server     ServerConfig     `toml:"server"`
	Data       DataConfig       `toml:"data"`
	Delegation DelegationConfig `toml:"delegation"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// DelegationConfig 委托文书业务默认值。
// 写在配置里而不是代码里，换客户/换口岸时可直接调整。
type DelegationConfig struct {
	DelegationType string   `toml:"delegation_type"`
	ValidityPeriod string   `toml:"validity_period"`
	Content        []string `toml:"content"`
	TradeMode      string   `toml:"trade_mode"`
	Currency       string   `toml:"currency"`
	Origin         string   `toml:"origin"`
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	defaults := delegation.StandardDefaults()
	return &AppConfig{
		Server: ServerConfig{
			Port:    20270,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Delegation: DelegationConfig{
			DelegationType: defaults.DelegationType,
			ValidityPeriod: defaults.ValidityPeriod,
			Content:        defaults.DelegationContent,
			TradeMode:      defaults.TradeMode,
			Currency:       defaults.Currency,
			Origin:         defaults.Origin,
		},
	}
}

// MapperDefaults 把配置转成映射器的默认值
func (c *AppConfig) MapperDefaults() delegation.Defaults {
	return delegation.Defaults{
		DelegationType:    c.Delegation.DelegationType,
		ValidityPeriod:    c.Delegation.ValidityPeriod,
		DelegationContent: c.Delegation.Content,
		TradeMode:         c.Delegation.TradeMode,
		Currency:          c.Delegation.Currency,
		Origin:            c.Delegation.Origin,
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 从可执行文件同目录下的 config.toml 加载配置。
// 文件不存在时使用默认配置。
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig 保存配置到 config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir 确保数据目录及其子目录存在
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	subdirs := []string{"uploads", "exports"}
	for _, subdir := range subdirs {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}
