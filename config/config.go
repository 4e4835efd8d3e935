package config

// 抓取流程用到的全部常量，均可在工作目录下的config.toml中覆盖，文件不存在时使用默认值

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/dszqbsm/animalcrawler/limiter"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const DefaultConfigFile = "config.toml"

type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	Image   ImageConfig   `mapstructure:"image"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
	Fetcher FetcherConfig `mapstructure:"fetcher"`
}

type SourceConfig struct {
	URL           string `mapstructure:"url"`
	BaseURL       string `mapstructure:"base_url"` // 相对链接的默认域名
	TableSelector string `mapstructure:"table_selector"`
}

type ImageConfig struct {
	Selector      string `mapstructure:"selector"`
	FallbackXPath string `mapstructure:"fallback_xpath"`
	Directory     string `mapstructure:"directory"`
	Extension     string `mapstructure:"extension"`
}

type OutputConfig struct {
	File string `mapstructure:"file"`
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
}

type FetcherConfig struct {
	Timeout   time.Duration    `mapstructure:"timeout"` // 0表示不设置超时
	UserAgent string           `mapstructure:"user_agent"`
	Proxy     []string         `mapstructure:"proxy"`
	Limits    []limiter.Config `mapstructure:"limits"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source.url", "https://en.wikipedia.org/wiki/List_of_animal_names")
	v.SetDefault("source.base_url", "https://en.wikipedia.org")
	v.SetDefault("source.table_selector", "#mw-content-text > div.mw-parser-output > table:nth-child(16)")

	v.SetDefault("image.selector", "table.infobox img")
	// 等价于css选择器div:nth-child(5) div a img
	v.SetDefault("image.fallback_xpath", "//div[count(preceding-sibling::*)=4]//div//a//img")
	v.SetDefault("image.directory", "tmp")
	v.SetDefault("image.extension", ".png")

	v.SetDefault("output.file", "index.html")

	v.SetDefault("log.file", "logger.log")
	v.SetDefault("log.level", "INFO")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetDefault("fetcher.timeout", 0)
	v.SetDefault("fetcher.user_agent", "animalcrawler/1.0 (collateral adjective table builder)")
	v.SetDefault("fetcher.proxy", []string{})
}

/*
输入配置文件路径，输出配置和一个错误

文件不存在时使用默认值，文件存在但格式错误或取值非法时返回错误
*/
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s failed:%w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed:%w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Source.URL == "" {
		return errors.New("source.url can not be empty")
	}
	if _, err := c.Base(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Base() (*url.URL, error) {
	u, err := url.Parse(c.Source.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid source.base_url %q", c.Source.BaseURL)
	}
	return u, nil
}

func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Log.Level)
}
