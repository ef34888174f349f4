package sessiontoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TECHBREW-hub/TravelSure/internal/domain"
)

func testUser() domain.User {
	return domain.User{
		ID:    "1",
		Name:  "John Doe",
		Email: "john@example.com",
		Phone: "+91 9876543210",
	}
}

func TestMintAndParse(t *testing.T) {
	tok, err := Mint(testUser(), "secret-one", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := Parse(tok, "secret-one")
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("1"), claims.UserID())
	assert.Equal(t, "john@example.com", claims.Email)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := Mint(testUser(), "secret-one", time.Hour)
	require.NoError(t, err)

	_, err = Parse(tok, "secret-two")
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	tok, err := Mint(testUser(), "secret-one", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(tok, "secret-one")
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse("not.a.token", "secret-one")
	assert.Error(t, err)
}
