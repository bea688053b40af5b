package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueToken signs a session token for a worker. The ttl comes from the
// tokenDuration config setting; the API middleware verifies the same claims.
func IssueToken(secret, workerID, role string, ttl time.Duration) (string, error) {
	if workerID == "" {
		return "", fmt.Errorf("worker id is required")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  workerID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
