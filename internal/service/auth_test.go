package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AkifKA/stock-app-api/internal/domain"
	"github.com/AkifKA/stock-app-api/internal/repository"
)

type memUserRepo struct {
	users map[string]domain.User
}

func (r *memUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	user.ID = uint(len(r.users) + 1)
	r.users[user.Email] = user
	return user, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()
	repo := &memUserRepo{users: map[string]domain.User{}}
	svc := NewAuthService(repo)

	created, err := svc.Signup(ctx, domain.User{Email: "ada@example.com", Password: "secret123", Name: "Ada"})
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))

	_, err = svc.Signup(ctx, domain.User{Email: "ada@example.com", Password: "other123"})
	assert.ErrorIs(t, err, ErrUserEmailExists)

	user, err := svc.Login(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.Login(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
