package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"chathub-backend/internal/config"
)

// SecretKeyService owns the signing key for access tokens. The key lives
// in a file next to the application data so it survives restarts; it is
// generated on first use.
type SecretKeyService struct {
	cachedKey *string
}

func (s *SecretKeyService) GetSecretKey() (string, error) {
	if s.cachedKey != nil {
		return *s.cachedKey, nil
	}

	secretKeyPath := config.GetEnv().SecretKeyPath
	data, err := os.ReadFile(secretKeyPath)
	if err != nil {
		if os.IsNotExist(err) {
			newKey := generateNewSecretKey()
			if err := os.WriteFile(secretKeyPath, []byte(newKey), 0600); err != nil {
				return "", fmt.Errorf("failed to write new secret key: %w", err)
			}
			s.cachedKey = &newKey
			return newKey, nil
		}
		return "", fmt.Errorf("failed to read secret key file: %w", err)
	}

	key := string(data)
	s.cachedKey = &key
	return key, nil
}

func generateNewSecretKey() string {
	keyBytes := make([]byte, 32)
	if _, err := rand.Read(keyBytes); err != nil {
		panic(fmt.Sprintf("failed to generate secret key: %v", err))
	}

	return hex.EncodeToString(keyBytes)
}

var secretKeyService = &SecretKeyService{}

func GetSecretKeyService() *SecretKeyService {
	return secretKeyService
}
