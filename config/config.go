package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	DefaultPolicy         string
	RoundRobinTimeQuantum int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once. A missing file falls back to
// defaults; a malformed one is fatal.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = LoadSchedulerConfig("./")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// LoadSchedulerConfig reads config.yaml from the first of paths that has
// one. SCHEDULER_* environment variables override file values.
func LoadSchedulerConfig(paths ...string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.default_policy", "fcfs")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Println("config file not found, using defaults")
	}

	return &SchedulerConfig{
		Port:                  v.GetInt("port"),
		DefaultPolicy:         v.GetString("scheduler.default_policy"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
	}, nil
}
