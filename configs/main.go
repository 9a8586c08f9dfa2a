package configs

import (
	"os"
	"path"
	"path/filepath"
	"reflect"

	"github.com/spf13/viper"
)

type Config struct {
	viper      *viper.Viper
	configPath string
}

type Configs struct {
	rootConfigs    *Config
	WPPluginLocale string
}

func IsDevMode() bool {
	environment, exists := os.LookupEnv("WPPLUGIN_ENV")
	return exists && environment == "develop"
}

func (c *Configs) CreatePathIfNotExist(path string) error {
	dir := filepath.Dir(path)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Configs) unmarshalConfig(config *Config, data interface{}) error {
	err := config.viper.ReadInConfig()
	if err != nil {
		return err
	}
	return config.viper.Unmarshal(data)
}

func (c *Configs) marshalConfig(config *Config, cfg interface{}) error {
	reflectCfg := reflect.ValueOf(cfg)
	for i := 0; i < reflectCfg.NumField(); i++ {
		k := reflectCfg.Type().Field(i).Name
		v := reflectCfg.Field(i).Interface()
		config.viper.Set(k, v)
	}

	err := c.CreatePathIfNotExist(config.configPath)
	if err != nil {
		return err
	}

	err = config.viper.WriteConfig()

	return err
}

func New() *Configs {
	// Root configs stored in root (~/.wpplugin)
	// Holds the directory locale used for plugin links
	rootViper := viper.New()
	rootPath := path.Join(os.Getenv("HOME"), ".wpplugin/config.json")
	rootViper.SetConfigFile(rootPath)
	rootViper.ReadInConfig()

	rootConfig := &Config{
		viper:      rootViper,
		configPath: rootPath,
	}

	return &Configs{
		rootConfigs:    rootConfig,
		WPPluginLocale: os.Getenv("WPPLUGIN_LOCALE"),
	}
}
