package utils

import (
	"github.com/google/uuid"
)

func GenerateEntityID() string {
	return uuid.NewString()
}

func GenerateRequestID() string {
	return uuid.NewString()
}
