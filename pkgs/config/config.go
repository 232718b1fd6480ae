package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Output struct {
	Type       string
	BufferSize int `mapstructure:"buffer_size"`
	Address    string
	Port       uint16
	Newline    string
}

type Log struct {
	Level string
}

type Configuration struct {
	Output Output
	Log    Log
}

const (
	OutputConsole = "console"
	OutputBuffer  = "buffer"
	OutputUDP     = "udp"

	NewlineAuto   = "auto"
	NewlineAlways = "always"
	NewlineNever  = "never"
)

// NewConfig reads ~/.tinyprintf or ./.tinyprintf (yaml), both optional.
// Every key can be overridden from the environment, e.g.
// TINYPRINTF_OUTPUT_TYPE=udp.
func NewConfig() (*Configuration, error) {
	config := Configuration{}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName(".tinyprintf")
	v.AddConfigPath("$HOME/")
	v.AddConfigPath(".")
	v.SetEnvPrefix("tinyprintf")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("output.type", OutputConsole)
	v.SetDefault("output.buffer_size", 256)
	v.SetDefault("output.address", "127.0.0.1")
	v.SetDefault("output.port", 21106)
	v.SetDefault("output.newline", NewlineAuto)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return &Configuration{}, fmt.Errorf("cannot parse config: %s", err.Error())
		}
	}
	if err := v.Unmarshal(&config); err != nil {
		return &config, fmt.Errorf("cannot parse config: %s", err.Error())
	}
	if err := config.validate(); err != nil {
		return &config, fmt.Errorf("cannot parse config: %s", err.Error())
	}

	return &config, nil
}

func (c *Configuration) validate() error {
	switch c.Output.Type {
	case OutputConsole, OutputBuffer, OutputUDP:
	default:
		return fmt.Errorf("unknown output type '%s'", c.Output.Type)
	}
	switch c.Output.Newline {
	case NewlineAuto, NewlineAlways, NewlineNever:
	default:
		return fmt.Errorf("unknown newline mode '%s'", c.Output.Newline)
	}
	if c.Output.BufferSize < 1 {
		return fmt.Errorf("output.buffer_size must be at least 1, got %d", c.Output.BufferSize)
	}
	return nil
}
