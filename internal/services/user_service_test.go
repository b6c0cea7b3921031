package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/brasketbro/lovenest/internal/models"
	"github.com/brasketbro/lovenest/internal/store"
)

func TestRegisterHashesPassword(t *testing.T) {
	svc := NewUserService(store.NewMemStorage())
	ctx := context.Background()

	user, err := svc.Register(ctx, models.InsertUser{Username: "mehak", Password: "secret"})
	require.NoError(t, err)

	assert.NotEqual(t, "secret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewUserService(store.NewMemStorage())
	ctx := context.Background()

	_, err := svc.Register(ctx, models.InsertUser{Username: "mehak", Password: "secret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, models.InsertUser{Username: "mehak", Password: "other"})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(store.NewMemStorage())

	_, err := svc.Register(context.Background(), models.InsertUser{Password: "secret"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "username", verr.Field)
}

func TestAuthenticate(t *testing.T) {
	svc := NewUserService(store.NewMemStorage())
	ctx := context.Background()

	_, err := svc.Register(ctx, models.InsertUser{Username: "swapnil", Password: "secret"})
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "swapnil", "secret")
	require.NoError(t, err)
	assert.Equal(t, "swapnil", user.Username)

	_, err = svc.Authenticate(ctx, "swapnil", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
