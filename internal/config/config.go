package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	VerifySID  string `yaml:"verify_sid"`
	DryRun     bool   `yaml:"dry_run"`
}

type Config struct {
	Server struct {
		Port       int    `yaml:"port"`
		CORSOrigin string `yaml:"cors_origin"`
	} `yaml:"server"`
	Twilio TwilioConfig `yaml:"twilio"`
	DevLog bool         `yaml:"dev_log"`
}

const defaultConfigPath = "config/config.yaml"

// LoadConfig reads the optional yaml file and then applies environment
// overrides. The result is read once at startup and never mutated afterwards.
func LoadConfig() *Config {
	return loadConfig(defaultConfigPath)
}

func loadConfig(path string) *Config {
	var cfg Config

	if f, err := os.Open(path); err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			panic("Failed to parse " + path + ": " + err.Error())
		}
	}

	applyEnv(&cfg)

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.CORSOrigin == "" {
		cfg.Server.CORSOrigin = "http://localhost:5173"
	}
	return &cfg
}

// applyEnv lets environment variables win over the yaml file, matching the
// original deployment which configured the gateway through its environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv("TWILIO_ACCOUNT_SID"); v != "" {
		cfg.Twilio.AccountSID = v
	}
	if v := os.Getenv("TWILIO_AUTH_TOKEN"); v != "" {
		cfg.Twilio.AuthToken = v
	}
	if v := os.Getenv("TWILIO_VERIFY_SID"); v != "" {
		cfg.Twilio.VerifySID = v
	}
	if v := os.Getenv("TWILIO_DRY_RUN"); v != "" {
		cfg.Twilio.DryRun, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		cfg.Server.CORSOrigin = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DEV_LOG"); v != "" {
		cfg.DevLog, _ = strconv.ParseBool(v)
	}
}
