package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env-default:"info"`
	Game     Game    `yaml:"game"`
	Archive  Archive `yaml:"archive"`
}

type Game struct {
	PlayerX      string `yaml:"player-x" env-default:"human"`
	PlayerO      string `yaml:"player-o" env-default:"minimax"`
	MinimaxDepth int    `yaml:"minimax-depth" env-default:"9"`
	// RandomSeed fixes the random strategy's source; 0 seeds from the clock.
	RandomSeed int64 `yaml:"random-seed" env-default:"0"`
}

type Archive struct {
	Enabled bool  `yaml:"enabled" env-default:"false"`
	Redis   Redis `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
