package config

import (
	"log"
	"sync"

	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

var configSingleton *ConfigSingleTon
var muonce sync.Once

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	ServerPort          string `mapstructure:"SERVER_PORT"`
	DbName              string `mapstructure:"POSTGRES_DB"`
	DbHost              string `mapstructure:"POSTGRES_HOST"`
	DbPort              string `mapstructure:"POSTGRES_PORT"`
	DbUser              string `mapstructure:"POSTGRES_USER"`
	DbPas               string `mapstructure:"POSTGRES_PASSWORD"`
	TokenSymmetricKey   string `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	KafkaBrokers        string `mapstructure:"KAFKA_BROKERS"`
	KafkaOrderTopic     string `mapstructure:"KAFKA_ORDER_TOPIC"`
	SeedData            bool   `mapstructure:"SEED_DATA"`
}

func GetConfig() *Config {
	initConfig()
	configSingleton.mu.RLock()
	defer configSingleton.mu.RUnlock()
	return configSingleton.Config
}

func initConfig() {
	if configSingleton == nil {
		muonce.Do(func() {
			configSingleton = &ConfigSingleTon{}
			if cf, err := loadConfig(); err == nil {
				configSingleton.Config = cf
			} else {
				log.Fatal("error reading config")
			}
			viper.WatchConfig()
			viper.OnConfigChange(func(e fsnotify.Event) {
				if cf, err := loadConfig(); err == nil {
					configSingleton.mu.Lock()
					configSingleton.Config = cf
					configSingleton.mu.Unlock()
				} else {
					log.Panic("failed to reload config file")
				}
			})
		})
	}
}

func loadConfig() (cf *Config, err error) {
	cf = &Config{
		ServerPort: "8080",
		DbHost:     "localhost",
		DbPort:     "5432",
		SeedData:   true,
	}
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// the env file is optional, real environment variables still apply
	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("config file not loaded: %v", err)
		}
		err = nil
	}

	err = viper.Unmarshal(cf)
	if err != nil {
		return
	}
	return
}
