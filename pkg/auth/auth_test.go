package auth

import (
	"testing"

	"github.com/arnavshah/mentor-scheduler-api/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHMACKeys(t *testing.T) {
	a := New("jwt", "master")
	key := a.GenerateHMACKey("scheduler-ui")

	userID, err := a.VerifyHMACKey(key)
	require.NoError(t, err)
	assert.Equal(t, "scheduler-ui", userID)

	_, err = New("jwt", "other").VerifyHMACKey(key)
	assert.Error(t, err)

	for _, bad := range []string{"nodot", ".sig", "a.b.c"} {
		_, err = a.VerifyHMACKey(bad)
		assert.Error(t, err, bad)
	}
}

func TestTokens(t *testing.T) {
	a := New("jwt-secret", "master")
	token, err := a.CreateToken("admin")
	require.NoError(t, err)

	claims, err := a.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	_, err = New("different", "master").VerifyToken(token)
	assert.Error(t, err)
}

func TestEnsureAdminExists(t *testing.T) {
	BcryptCost = bcrypt.MinCost
	defer func() { BcryptCost = 14 }()

	db, err := database.InitDB("", "file:auth_admin?mode=memory&cache=shared")
	require.NoError(t, err)

	created, err := EnsureAdminExists(db, "root", "s3cret")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = EnsureAdminExists(db, "other", "pw")
	require.NoError(t, err)
	assert.False(t, created)

	var user database.MasterUser
	require.NoError(t, db.First(&user).Error)
	assert.Equal(t, "root", user.Username)
	assert.True(t, CheckPasswordHash("s3cret", user.PasswordHash))
	assert.False(t, CheckPasswordHash("wrong", user.PasswordHash))
}
