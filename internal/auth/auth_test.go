package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	admin := &Session{UserID: "u1", Role: RoleAdmin}
	staff := &Session{UserID: "u2", Role: RoleStaff}
	viewer := &Session{UserID: "u3", Role: RoleViewer}

	t.Run("nil session denied", func(t *testing.T) {
		require.ErrorIs(t, Authorize(nil), ErrUnauthorized)
		require.ErrorIs(t, Authorize(nil, RoleAdmin), ErrUnauthorized)
	})

	t.Run("no required roles allows any session", func(t *testing.T) {
		require.NoError(t, Authorize(viewer))
	})

	t.Run("matching role allowed", func(t *testing.T) {
		require.NoError(t, Authorize(admin, RoleAdmin))
		require.NoError(t, Authorize(staff, RoleAdmin, RoleStaff))
	})

	t.Run("insufficient role denied", func(t *testing.T) {
		err := Authorize(viewer, RoleAdmin, RoleStaff)
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.GenerateAccessToken("user-123", "admin@partyhall.com", RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "admin@partyhall.com", claims.Email)
	assert.Equal(t, string(RoleAdmin), claims.Role)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)

	token, err := issuer.GenerateAccessToken("user-123", "x@example.com", RoleStaff)
	require.NoError(t, err)

	_, err = verifier.ParseAndValidate(token)
	require.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, err := m.GenerateAccessToken("user-123", "x@example.com", RoleViewer)
	require.NoError(t, err)

	_, err = m.ParseAndValidate(token)
	require.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasherWithCost(4) // low cost keeps the test fast

	hash, err := h.Hash("Admin@123")
	require.NoError(t, err)
	require.NotEqual(t, "Admin@123", hash)

	assert.NoError(t, h.Compare(hash, "Admin@123"))
	assert.Error(t, h.Compare(hash, "wrong-password"))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("admin"))
	assert.True(t, ValidRole("staff"))
	assert.True(t, ValidRole("viewer"))
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole(""))
}
