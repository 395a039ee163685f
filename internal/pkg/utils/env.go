package utils

import (
	"os"
	"strconv"
)

func getEnv(key string) (string, bool) {
	value, exists := os.LookupEnv(key)
	return value, exists
}

func GetEnvString(key, fallback string) string {
	if value, exists := getEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	value, exists := getEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func GetEnvBool(key string, fallback bool) bool {
	value, exists := getEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
