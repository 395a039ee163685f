package utils

import "github.com/google/uuid"

func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateLockValue returns a unique owner token for redis locks.
func GenerateLockValue() string {
	return uuid.New().String()
}
