package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Artur-creator-1/blogapp/repos/memory"
	"github.com/Artur-creator-1/blogapp/utils"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func newUserService(t *testing.T) (*UserService, *memory.Store) {
	t.Helper()
	store := memory.New()
	return NewUserService(store.Repos().Users, testLogger()), store
}

func validRegistration() RegisterRequest {
	return RegisterRequest{
		Username:    "alice_99",
		Email:       "alice@example.com",
		Password:    "Secret123",
		DisplayName: "Alice",
	}
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	resp := svc.Register(ctx, validRegistration())
	require.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.Equal(t, "alice_99", resp.Data.Username)
	assert.True(t, resp.Data.IsActive)
	assert.NotEmpty(t, resp.Data.PasswordHash)
	assert.NotEqual(t, "Secret123", resp.Data.PasswordHash)
}

func TestUserService_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	req := validRegistration()
	req.Username = "ab"
	req.Email = "not-an-email"
	req.Password = "weak"

	resp := svc.Register(ctx, req)
	require.False(t, resp.Success)
	assert.Equal(t, KindValidation, resp.Kind)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Contains(t, resp.Errors, "Username must be at least 3 characters")
	assert.Contains(t, resp.Errors, "Invalid email format")
	assert.Contains(t, resp.Errors, "Password must be at least 6 characters")
}

func TestUserService_RegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	require.True(t, svc.Register(ctx, validRegistration()).Success)

	dup := validRegistration()
	dup.Email = "other@example.com"
	resp := svc.Register(ctx, dup)
	require.False(t, resp.Success)
	assert.Equal(t, KindConflict, resp.Kind)
	assert.Equal(t, "Username already taken", resp.Message)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	require.True(t, svc.Register(ctx, validRegistration()).Success)

	dup := validRegistration()
	dup.Username = "bob_77"
	resp := svc.Register(ctx, dup)
	require.False(t, resp.Success)
	assert.Equal(t, KindConflict, resp.Kind)
	assert.Equal(t, "Email already registered", resp.Message)
}

func TestUserService_DeletedUsernameStaysTaken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	created := svc.Register(ctx, validRegistration())
	require.True(t, created.Success)
	require.True(t, svc.Delete(ctx, created.Data.ID).Success)

	// The row survives deactivation, so the username cannot be re-registered.
	resp := svc.Register(ctx, validRegistration())
	require.False(t, resp.Success)
	assert.Equal(t, KindConflict, resp.Kind)
	assert.Equal(t, "Username already taken", resp.Message)
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	created := svc.Register(ctx, validRegistration())
	require.True(t, created.Success)

	resp := svc.GetByID(ctx, created.Data.ID)
	require.True(t, resp.Success)
	assert.Equal(t, "alice_99", resp.Data.Username)

	missing := svc.GetByID(ctx, 999999)
	require.False(t, missing.Success)
	assert.Equal(t, KindNotFound, missing.Kind)
	assert.Equal(t, "User not found", missing.Message)

	invalid := svc.GetByID(ctx, 0)
	require.False(t, invalid.Success)
	assert.Equal(t, KindValidation, invalid.Kind)
}

func TestUserService_GetByIDDeactivated(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	created := svc.Register(ctx, validRegistration())
	require.True(t, created.Success)
	require.True(t, svc.Delete(ctx, created.Data.ID).Success)

	resp := svc.GetByID(ctx, created.Data.ID)
	require.False(t, resp.Success)
	assert.Equal(t, KindNotFound, resp.Kind)
}

func TestUserService_GetAll(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	empty := svc.GetAll(ctx)
	require.True(t, empty.Success)
	assert.Empty(t, empty.Data)
	assert.Equal(t, "No users found", empty.Message)

	first := svc.Register(ctx, validRegistration())
	require.True(t, first.Success)

	second := validRegistration()
	second.Username = "bob_77"
	second.Email = "bob@example.com"
	require.True(t, svc.Register(ctx, second).Success)

	require.True(t, svc.Delete(ctx, first.Data.ID).Success)

	resp := svc.GetAll(ctx)
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "bob_77", resp.Data[0].Username)
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	created := svc.Register(ctx, validRegistration())
	require.True(t, created.Success)

	resp := svc.Update(ctx, created.Data.ID, UpdateUserRequest{DisplayName: "Alice B.", Bio: "writes about Go"})
	require.True(t, resp.Success)
	assert.Equal(t, "Alice B.", resp.Data.DisplayName)
	assert.Equal(t, "writes about Go", resp.Data.Bio)

	// Blank fields keep the stored values.
	noop := svc.Update(ctx, created.Data.ID, UpdateUserRequest{})
	require.True(t, noop.Success)
	assert.Equal(t, "Alice B.", noop.Data.DisplayName)
	assert.Equal(t, "writes about Go", noop.Data.Bio)
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	created := svc.Register(ctx, validRegistration())
	require.True(t, created.Success)

	resp := svc.Delete(ctx, created.Data.ID)
	require.True(t, resp.Success)
	assert.Equal(t, "User deleted successfully", resp.Data)

	again := svc.Delete(ctx, created.Data.ID)
	require.False(t, again.Success)
	assert.Equal(t, KindNotFound, again.Kind)
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	svc, store := newUserService(t)

	created := svc.Register(ctx, validRegistration())
	require.True(t, created.Success)
	id := created.Data.ID

	resp := svc.ChangePassword(ctx, id, "Secret123", "freshpw")
	require.True(t, resp.Success)
	assert.Equal(t, "Password changed successfully", resp.Message)

	stored, err := store.Repos().Users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(stored.PasswordHash, "freshpw"))
	assert.False(t, utils.CheckPassword(stored.PasswordHash, "Secret123"))
}

func TestUserService_ChangePasswordRules(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	created := svc.Register(ctx, validRegistration())
	require.True(t, created.Success)
	id := created.Data.ID

	tooShort := svc.ChangePassword(ctx, id, "Secret123", "five5")
	require.False(t, tooShort.Success)
	assert.Equal(t, KindValidation, tooShort.Kind)
	assert.Equal(t, "New password must be at least 6 characters", tooShort.Message)

	// Six characters pass: the uppercase/lowercase/digit rule applies only at
	// registration.
	plain := svc.ChangePassword(ctx, id, "Secret123", "simple")
	require.True(t, plain.Success)

	wrongOld := svc.ChangePassword(ctx, id, "Secret123", "another")
	require.False(t, wrongOld.Success)
	assert.Equal(t, KindAuth, wrongOld.Kind)
	assert.Equal(t, "Incorrect old password", wrongOld.Message)

	empty := svc.ChangePassword(ctx, id, "", "")
	require.False(t, empty.Success)
	assert.Equal(t, KindValidation, empty.Kind)
}
