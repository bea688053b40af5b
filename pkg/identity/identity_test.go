package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextProvider_RoundTrip(t *testing.T) {
	actor := &Actor{ID: "worker-1", Role: "worker"}
	ctx := WithActor(context.Background(), actor)

	got := ContextProvider{}.CurrentActor(ctx)

	require.NotNil(t, got)
	assert.Equal(t, "worker-1", got.ID)
	assert.Equal(t, "worker", got.Role)
}

func TestContextProvider_NoActor(t *testing.T) {
	assert.Nil(t, ContextProvider{}.CurrentActor(context.Background()))
}

func TestStaticProvider(t *testing.T) {
	p := StaticProvider{Actor: &Actor{ID: "operator"}}
	assert.Equal(t, "operator", p.CurrentActor(context.Background()).ID)

	assert.Nil(t, StaticProvider{}.CurrentActor(context.Background()))
}

func TestIssueToken_SignsVerifiableClaims(t *testing.T) {
	signed, err := IssueToken("secret", "worker-1", "worker", time.Hour)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "worker-1", claims["sub"])
	assert.Equal(t, "worker", claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
}

func TestIssueToken_ExpiredTokenRejected(t *testing.T) {
	signed, err := IssueToken("secret", "worker-1", "worker", -time.Minute)
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	assert.Error(t, err)
}

func TestIssueToken_RequiresWorkerID(t *testing.T) {
	_, err := IssueToken("secret", "", "worker", time.Hour)
	assert.Error(t, err)
}
