package utils

import (
	"log"
	"os"
	"strconv"
)

func lookupEnv[T any](key string, parse func(string) (T, error), defaultValue T) T {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	value, err := parse(raw)
	if err != nil {
		log.Printf("Invalid value for %s: %v, using default", key, err)
		return defaultValue
	}
	return value
}

func GetEnvString(key, defaultValue string) string {
	if raw, ok := os.LookupEnv(key); ok {
		return raw
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, strconv.Atoi, defaultValue)
}

func GetEnvInt64(key string, defaultValue int64) int64 {
	return lookupEnv(key, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	}, defaultValue)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, strconv.ParseBool, defaultValue)
}
