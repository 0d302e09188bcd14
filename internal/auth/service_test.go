package auth

import (
	"context"
	"testing"

	"gorm.io/gorm"

	pkgAuth "github.com/lizbakes/cakeapp-backend/pkg/auth"
	"github.com/lizbakes/cakeapp-backend/pkg/config"
	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
	"github.com/lizbakes/cakeapp-backend/pkg/enums"
	pkgerrors "github.com/lizbakes/cakeapp-backend/pkg/errors"
	"github.com/lizbakes/cakeapp-backend/pkg/security"
)

type stubUserRepo struct {
	usersByEmail map[string]*models.User
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if user, ok := s.usersByEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "cakeapp",
		ExpirationMinutes: 60,
	}
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    32768,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, testPasswordConfig())
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func buildLoginService(t *testing.T, user *models.User, jwtCfg config.JWTConfig) Service {
	t.Helper()
	repo := &stubUserRepo{usersByEmail: map[string]*models.User{}}
	if user != nil {
		repo.usersByEmail[user.Email] = user
	}
	svc, err := NewService(ServiceParams{UserRepo: repo, JWTConfig: jwtCfg})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func expectCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != code {
		t.Fatalf("expected %s error, got %v", code, err)
	}
}

func TestLoginSuccessIssuesClaims(t *testing.T) {
	password := "super-secret-pw"
	user := &models.User{
		ID:           7,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: mustHashPassword(t, password),
		Phone:        "0700000001",
		Role:         enums.UserRoleCustomer,
		IsVerified:   true,
	}
	cfg := testJWTConfig()
	svc := buildLoginService(t, user, cfg)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "  ALICE@Example.com ",
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := pkgAuth.ParseAccessToken(cfg, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("expected user id 7, got %d", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email claim %s", claims.Email)
	}
	if claims.Role != enums.UserRoleCustomer {
		t.Fatalf("unexpected role claim %s", claims.Role)
	}
	if resp.User == nil || resp.User.Email != "alice@example.com" {
		t.Fatalf("expected profile in response, got %+v", resp.User)
	}
}

func TestLoginUnknownEmailIsNotFound(t *testing.T) {
	svc := buildLoginService(t, nil, testJWTConfig())

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	expectCode(t, err, pkgerrors.CodeNotFound)
}

func TestLoginBadPasswordBeforeVerificationCheck(t *testing.T) {
	// An unverified user with a wrong password must see 401, not 403.
	user := &models.User{
		ID:           3,
		Email:        "bob@example.com",
		PasswordHash: mustHashPassword(t, "right-password"),
		Role:         enums.UserRoleCustomer,
		IsVerified:   false,
	}
	svc := buildLoginService(t, user, testJWTConfig())

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "bob@example.com",
		Password: "wrong-password",
	})
	expectCode(t, err, pkgerrors.CodeUnauthorized)
}

func TestLoginUnverifiedUser(t *testing.T) {
	password := "right-password"
	user := &models.User{
		ID:           3,
		Email:        "bob@example.com",
		PasswordHash: mustHashPassword(t, password),
		Role:         enums.UserRoleCustomer,
		IsVerified:   false,
	}
	svc := buildLoginService(t, user, testJWTConfig())

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "bob@example.com",
		Password: password,
	})
	expectCode(t, err, pkgerrors.CodeUnverified)
}

func TestLoginMissingSecretIsConfigError(t *testing.T) {
	password := "right-password"
	user := &models.User{
		ID:           3,
		Email:        "bob@example.com",
		PasswordHash: mustHashPassword(t, password),
		Role:         enums.UserRoleCustomer,
		IsVerified:   true,
	}
	cfg := testJWTConfig()
	cfg.Secret = ""
	svc := buildLoginService(t, user, cfg)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "bob@example.com",
		Password: password,
	})
	expectCode(t, err, pkgerrors.CodeConfig)
}

func TestLoginValidatesInput(t *testing.T) {
	svc := buildLoginService(t, nil, testJWTConfig())

	_, err := svc.Login(context.Background(), LoginRequest{Email: "", Password: ""})
	expectCode(t, err, pkgerrors.CodeValidation)
}
