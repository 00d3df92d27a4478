package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort = "8080"
	defaultEnvFile  = ".env"
)

type Config struct {
	HTTPPort                   string
	LogLevel                   slog.Level
	InitialFleet               []int
	DeliveryCompletionSchedule string
}

// LoadConfig reads envFile and the process environment. Process variables win over the
// file. A missing file is an error only when required is set.
func LoadConfig(envFile string, required bool) (Config, error) {
	fileVars, err := godotenv.Read(envFile)
	if err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read env file %s: %w", envFile, err)
		}
		fileVars = map[string]string{}
	}

	return ParseConfig(func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fileVars[key]
	})
}

// ParseConfig builds a Config from a variable lookup.
func ParseConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:                   getenv("HTTP_PORT"),
		DeliveryCompletionSchedule: strings.TrimSpace(getenv("DELIVERY_COMPLETION_SCHEDULE")),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = defaultHTTPPort
	}
	if _, err := strconv.ParseUint(config.HTTPPort, 10, 16); err != nil {
		return Config{}, fmt.Errorf("HTTP_PORT: %w", err)
	}

	if level := getenv("LOG_LEVEL"); level != "" {
		if err := config.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	fleet, err := parseFleet(getenv("INITIAL_FLEET"))
	if err != nil {
		return Config{}, fmt.Errorf("INITIAL_FLEET: %w", err)
	}
	config.InitialFleet = fleet

	return config, nil
}

func parseFleet(s string) ([]int, error) {
	fleet := make([]int, 0)
	if strings.TrimSpace(s) == "" {
		return fleet, nil
	}

	for _, field := range strings.Split(s, ",") {
		number, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		fleet = append(fleet, number)
	}
	return fleet, nil
}
