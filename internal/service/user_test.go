package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"circula/internal/auth"
	"circula/internal/config"
	"circula/internal/dto"
	"circula/internal/model"
	"circula/internal/repository"
	"circula/internal/storage"
	"circula/internal/testutil"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newImageStore(t *testing.T) storage.ImageStore {
	t.Helper()

	images, err := storage.NewImageStore(config.Upload{Dir: t.TempDir(), MaxProfileBytes: 1 << 20, MaxProductBytes: 1 << 20})
	require.NoError(t, err)
	return images
}

func newUserService(t *testing.T) (UserService, *gorm.DB, auth.TokenManager) {
	db := testutil.NewDB(t)
	logger, _ := test.NewNullLogger()
	tokens := auth.NewTokenManager(config.JWT{Secret: "s", TTL: time.Hour})

	return NewUserService(repository.NewCustomerRepository(db), newImageStore(t), tokens, logger), db, tokens
}

func TestUserService_SignupAndLogin(t *testing.T) {
	svc, _, tokens := newUserService(t)
	ctx := context.Background()

	picture := testutil.FileHeader(t, "me.png", testutil.PNG)
	customer, token, err := svc.Signup(ctx, dto.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter2",
		City:     "Lyon",
	}, picture)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", customer.Password)
	assert.Equal(t, model.RoleCustomer, customer.Role)
	require.NotNil(t, customer.City)
	assert.Equal(t, "Lyon", *customer.City)
	assert.Nil(t, customer.Phone)
	require.NotNil(t, customer.ProfilePicture)
	assert.True(t, strings.HasPrefix(*customer.ProfilePicture, "/uploads/profile-pictures/"))

	userID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, userID)

	logged, _, err := svc.Login(ctx, "alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, logged.ID)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	require.NoError(t, svc.UpdateStatus(ctx, customer.ID, model.UserInactive))
	_, _, err = svc.Login(ctx, "alice@example.com", "hunter2")
	assert.ErrorIs(t, err, model.ErrAccountInactive)
}

func TestUserService_SignupConflicts(t *testing.T) {
	svc, db, _ := newUserService(t)
	ctx := context.Background()
	testutil.CreateCustomer(t, db, "alice")

	_, _, err := svc.Signup(ctx, dto.SignupRequest{Username: "other", Email: "alice@example.com", Password: "x"}, nil)
	assert.ErrorIs(t, err, model.ErrEmailTaken)

	_, _, err = svc.Signup(ctx, dto.SignupRequest{Username: "alice", Email: "new@example.com", Password: "x"}, nil)
	assert.ErrorIs(t, err, model.ErrUsernameTaken)

	_, _, err = svc.Signup(ctx, dto.SignupRequest{Username: "bob", Email: "bob@example.com"}, nil)
	assert.ErrorIs(t, err, model.ErrPasswordRequired)

	_, _, err = svc.Signup(ctx, dto.SignupRequest{Username: " ", Email: "bob@example.com", Password: "x"}, nil)
	assert.ErrorIs(t, err, model.ErrInvalidUserData)
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc, db, _ := newUserService(t)
	ctx := context.Background()
	alice := testutil.CreateCustomer(t, db, "alice")
	testutil.CreateCustomer(t, db, "bob")

	_, err := svc.UpdateProfile(ctx, alice.ID, dto.ProfileRequest{Username: "bob", Email: "alice@example.com"}, nil)
	assert.ErrorIs(t, err, model.ErrUsernameTaken)

	updated, err := svc.UpdateProfile(ctx, alice.ID, dto.ProfileRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Phone:    "555-0100",
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "555-0100", *updated.Phone)

	_, err = svc.UpdateProfile(ctx, alice.ID+100, dto.ProfileRequest{Username: "ghost", Email: "ghost@example.com"}, nil)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestUserService_StatusAndPromotion(t *testing.T) {
	svc, db, _ := newUserService(t)
	ctx := context.Background()
	alice := testutil.CreateCustomer(t, db, "alice")

	assert.ErrorIs(t, svc.UpdateStatus(ctx, alice.ID, "Banned"), model.ErrInvalidUserStatus)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, alice.ID+9, model.UserInactive), model.ErrUserNotFound)

	require.NoError(t, svc.PromoteAdmin(ctx, "alice@example.com"))
	profile, err := svc.Profile(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, profile.Role)

	assert.ErrorIs(t, svc.PromoteAdmin(ctx, "nobody@example.com"), model.ErrUserNotFound)
}
