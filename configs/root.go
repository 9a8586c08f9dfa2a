package configs

import (
	"github.com/pixolin/wpplugin/entity"
	"github.com/pixolin/wpplugin/errors"
)

func (c *Configs) GetRootConfigs() (*entity.RootConfig, error) {
	var cfg entity.RootConfig

	if err := c.unmarshalConfig(c.rootConfigs, &cfg); err != nil {
		return nil, errors.RootConfigNotFound
	}
	return &cfg, nil
}

func (c *Configs) SetRootConfig(cfg *entity.RootConfig) error {
	return c.marshalConfig(c.rootConfigs, *cfg)
}

// GetLocale resolves the directory locale. The environment variable
// wins over the config file; no config at all means no locale prefix.
func (c *Configs) GetLocale() string {
	if c.WPPluginLocale != "" {
		return c.WPPluginLocale
	}

	cfg, err := c.GetRootConfigs()
	if err != nil {
		return ""
	}
	return cfg.Locale
}

func (c *Configs) SetLocale(locale string) error {
	return c.SetRootConfig(&entity.RootConfig{
		Locale: locale,
	})
}
