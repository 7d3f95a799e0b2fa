package config

import (
	"fmt"
	"strings"

	"github.com/kevin-chtw/tw_riichi/riichi"
	"github.com/spf13/viper"
)

const envPrefix = "RIICHI"

type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Rule   RuleConfig   `mapstructure:"rule"`
	Output OutputConfig `mapstructure:"output"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"` // 为空输出到 stderr
}

type RuleConfig struct {
	StrictPinfu      bool `mapstructure:"strict_pinfu"`
	DoubleWindPairFu bool `mapstructure:"double_wind_pair_fu"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"` // text 或 json
}

func setDefaults(v *viper.Viper) {
	rule := riichi.DefaultRule()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "")
	v.SetDefault("rule.strict_pinfu", rule.StrictPinfu)
	v.SetDefault("rule.double_wind_pair_fu", rule.DoubleWindPairFu)
	v.SetDefault("output.format", "text")
}

// Load 读取 yaml 配置, path 为空时只用默认值和环境变量 (RIICHI_RULE_STRICT_PINFU 等)
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	return nil
}

func (c *Config) RuleOptions() riichi.Rule {
	return riichi.Rule{
		StrictPinfu:      c.Rule.StrictPinfu,
		DoubleWindPairFu: c.Rule.DoubleWindPairFu,
	}
}
