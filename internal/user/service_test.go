package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/venuedesk/hall-booking-backend/internal/auth"
)

type fakeRepository struct {
	users map[primitive.ObjectID]*User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: map[primitive.ObjectID]*User{}}
}

func (r *fakeRepository) Create(_ context.Context, u *User) error {
	for _, other := range r.users {
		if other.Email == u.Email {
			return ErrEmailTaken
		}
	}
	u.ID = primitive.NewObjectID()
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	u, ok := r.users[oid]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepository) List(_ context.Context) ([]*User, error) {
	out := []*User{}
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func newTestService() Service {
	return NewService(newFakeRepository(), auth.NewBcryptPasswordHasherWithCost(4))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	t.Run("defaults to viewer role", func(t *testing.T) {
		u, err := svc.Register(ctx, RegisterRequest{
			Name:     "Viewer User",
			Email:    "viewer@partyhall.com",
			Password: "Viewer@123",
		})
		require.NoError(t, err)
		assert.Equal(t, auth.RoleViewer, u.Role)
		assert.NotEmpty(t, u.PasswordHash)
		assert.NotEqual(t, "Viewer@123", u.PasswordHash)
	})

	t.Run("normalizes email", func(t *testing.T) {
		u, err := svc.Register(ctx, RegisterRequest{
			Name:     "Admin User",
			Email:    "  Admin@PartyHall.com ",
			Password: "Admin@123",
			Role:     "admin",
		})
		require.NoError(t, err)
		assert.Equal(t, "admin@partyhall.com", u.Email)
		assert.Equal(t, auth.RoleAdmin, u.Role)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterRequest{
			Name:     "Impostor",
			Email:    "ADMIN@partyhall.com",
			Password: "Other@123",
		})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterRequest{
			Name:     "Short",
			Email:    "short@partyhall.com",
			Password: "abc",
		})
		require.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterRequest{
			Name:     "Boss",
			Email:    "boss@partyhall.com",
			Password: "Boss@123",
			Role:     "superuser",
		})
		require.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Register(ctx, RegisterRequest{
		Name:     "Staff User",
		Email:    "staff@partyhall.com",
		Password: "Staff@123",
		Role:     "staff",
	})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		u, err := svc.Login(ctx, "Staff@PartyHall.com", "Staff@123")
		require.NoError(t, err)
		assert.Equal(t, auth.RoleStaff, u.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "staff@partyhall.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost@partyhall.com", "Staff@123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
