package users

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/lizbakes/cakeapp-backend/pkg/config"
	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
	"github.com/lizbakes/cakeapp-backend/pkg/enums"
	pkgerrors "github.com/lizbakes/cakeapp-backend/pkg/errors"
	"github.com/lizbakes/cakeapp-backend/pkg/security"
)

type stubRepo struct {
	byID    map[uint]*models.User
	byEmail map[string]*models.User

	updates map[uint]UpdateUserDTO
	deleted []uint
}

func newStubRepo(seed ...*models.User) *stubRepo {
	repo := &stubRepo{
		byID:    map[uint]*models.User{},
		byEmail: map[string]*models.User{},
		updates: map[uint]UpdateUserDTO{},
	}
	for _, u := range seed {
		repo.byID[u.ID] = u
		repo.byEmail[u.Email] = u
	}
	return repo
}

func (s *stubRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if user, ok := s.byEmail[NormalizeEmail(email)]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(s.byID))
	for _, u := range s.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (s *stubRepo) Update(ctx context.Context, id uint, dto UpdateUserDTO) (*models.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.updates[id] = dto
	if dto.Name != nil {
		user.Name = *dto.Name
	}
	if dto.Email != nil {
		user.Email = *dto.Email
	}
	if dto.PasswordHash != nil {
		user.PasswordHash = *dto.PasswordHash
	}
	if dto.Phone != nil {
		user.Phone = *dto.Phone
	}
	if dto.Address != nil {
		user.Address = dto.Address
	}
	if dto.Role != nil {
		user.Role = *dto.Role
	}
	return user, nil
}

func (s *stubRepo) Delete(_ context.Context, id uint) error {
	s.deleted = append(s.deleted, id)
	delete(s.byID, id)
	return nil
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

func buildService(t *testing.T, repo *stubRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo, PasswordConfig: testPasswordConfig()})
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

func strPtr(v string) *string { return &v }

func seedUser() *models.User {
	return &models.User{
		ID:           1,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Phone:        "0700000001",
		Role:         enums.UserRoleCustomer,
		IsVerified:   true,
	}
}

func TestGetByIDOmitsCredentials(t *testing.T) {
	svc := buildService(t, newStubRepo(seedUser()))

	dto, err := svc.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if dto.Email != "alice@example.com" || dto.Name != "Alice" {
		t.Fatalf("unexpected dto %+v", dto)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := buildService(t, newStubRepo())

	_, err := svc.GetByID(context.Background(), 99)
	expectCode(t, err, pkgerrors.CodeNotFound)
}

func TestUpdatePasswordOnlyRehashes(t *testing.T) {
	user := seedUser()
	repo := newStubRepo(user)
	svc := buildService(t, repo)

	before := *user
	dto, err := svc.Update(context.Background(), 1, UpdateUserRequest{
		Password: strPtr("brand-new-password"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	applied := repo.updates[1]
	if applied.PasswordHash == nil {
		t.Fatal("expected password hash in update")
	}
	if *applied.PasswordHash == "brand-new-password" {
		t.Fatal("password must be hashed, not stored raw")
	}
	ok, err := security.VerifyPassword("brand-new-password", *applied.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("new hash must verify: ok=%v err=%v", ok, err)
	}
	if applied.Name != nil || applied.Email != nil || applied.Phone != nil || applied.Address != nil {
		t.Fatalf("only password should change, got %+v", applied)
	}
	if dto.Name != before.Name || dto.Email != before.Email || dto.Phone != before.Phone {
		t.Fatalf("profile fields must be untouched: %+v", dto)
	}
}

func TestUpdateNormalizesEmail(t *testing.T) {
	repo := newStubRepo(seedUser())
	svc := buildService(t, repo)

	dto, err := svc.Update(context.Background(), 1, UpdateUserRequest{
		Email: strPtr("  NewAlice@Example.COM "),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.Email != "newalice@example.com" {
		t.Fatalf("expected normalized email, got %s", dto.Email)
	}
}

func TestUpdateDuplicateEmailConflicts(t *testing.T) {
	other := &models.User{ID: 2, Email: "taken@example.com", Phone: "07", Role: enums.UserRoleCustomer}
	repo := newStubRepo(seedUser(), other)
	svc := buildService(t, repo)

	_, err := svc.Update(context.Background(), 1, UpdateUserRequest{
		Email: strPtr("taken@example.com"),
	})
	expectCode(t, err, pkgerrors.CodeConflict)
}

func TestUpdateNotFound(t *testing.T) {
	svc := buildService(t, newStubRepo())

	_, err := svc.Update(context.Background(), 42, UpdateUserRequest{Name: strPtr("X")})
	expectCode(t, err, pkgerrors.CodeNotFound)
}

func TestDeleteThenGetNotFound(t *testing.T) {
	repo := newStubRepo(seedUser())
	svc := buildService(t, repo)

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 1 {
		t.Fatalf("expected repo delete for id 1, got %v", repo.deleted)
	}

	_, err := svc.GetByID(context.Background(), 1)
	expectCode(t, err, pkgerrors.CodeNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	svc := buildService(t, newStubRepo())

	err := svc.Delete(context.Background(), 404)
	expectCode(t, err, pkgerrors.CodeNotFound)
}

func TestUpdateRoleElevation(t *testing.T) {
	repo := newStubRepo(seedUser())
	svc := buildService(t, repo)

	admin := enums.UserRoleAdmin
	dto, err := svc.Update(context.Background(), 1, UpdateUserRequest{Role: &admin})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.Role != enums.UserRoleAdmin {
		t.Fatalf("expected admin role, got %s", dto.Role)
	}
	if stored := repo.updates[1]; stored.Role == nil || *stored.Role != enums.UserRoleAdmin {
		t.Fatalf("role not persisted: %+v", stored)
	}
}

func TestUpdateRejectsUnknownRole(t *testing.T) {
	repo := newStubRepo(seedUser())
	svc := buildService(t, repo)

	bogus := enums.UserRole("superuser")
	_, err := svc.Update(context.Background(), 1, UpdateUserRequest{Role: &bogus})
	expectCode(t, err, pkgerrors.CodeValidation)

	if _, ok := repo.updates[1]; ok {
		t.Fatal("invalid role must not reach the repo")
	}
}
