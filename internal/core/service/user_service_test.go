package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/one-health/user-service/internal/core/domain"
	"github.com/one-health/user-service/internal/core/ports"
)

func strPtr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

func TestUserService_Register_Success(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	svc := NewUserService(users, roles, false, discardLogger)

	user, err := svc.Register(context.Background(), ports.CreateUserInput{
		Email:       "alice@example.com",
		Password:    "pass123",
		FullName:    "Alice Adams",
		PhoneNumber: "+5215512345678",
		RoleID:      domain.RolePatient,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected an id on the created user")
	}
	if user.PasswordHash == "pass123" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.IsActive {
		t.Error("new users must be active")
	}

	assignment, _ := roles.FindAssignmentByUserID(context.Background(), user.ID)
	if assignment == nil || assignment.RoleID != domain.RolePatient {
		t.Fatalf("expected patient role assignment, got %+v", assignment)
	}
	if assignment.UserID != user.ID {
		t.Errorf("assignment user id %q does not match user %q", assignment.UserID, user.ID)
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubRoleRepo(), false, discardLogger)

	input := ports.CreateUserInput{Email: "bob@example.com", Password: "pass", FullName: "Bob"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Register_ThenLookupByEmail(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubRoleRepo(), false, discardLogger)

	created, err := svc.Register(context.Background(), ports.CreateUserInput{
		Email: "carol@example.com", Password: "pass", FullName: "Carol",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	found, err := users.FindByEmail(context.Background(), "carol@example.com")
	if err != nil {
		t.Fatalf("lookup after create failed: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("expected id %q, got %q", created.ID, found.ID)
	}
}

func TestUserService_Register_MissingFields(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubRoleRepo(), false, discardLogger)

	if _, err := svc.Register(context.Background(), ports.CreateUserInput{Email: "", Password: "x"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.CreateUserInput{Email: "a@b.c", Password: ""}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestUserService_RegisterOpen_Closed(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubRoleRepo(), false, discardLogger)

	_, err := svc.RegisterOpen(context.Background(), ports.CreateUserInput{
		Email: "dave@example.com", Password: "pass", FullName: "Dave",
	})
	if !errors.Is(err, domain.ErrRegistrationClosed) {
		t.Fatalf("expected ErrRegistrationClosed, got %v", err)
	}
}

func TestUserService_RegisterOpen_Enabled(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	svc := NewUserService(users, roles, true, discardLogger)

	user, err := svc.RegisterOpen(context.Background(), ports.CreateUserInput{
		Email: "erin@example.com", Password: "pass", FullName: "Erin",
		RoleID: domain.RoleAdmin, // must be ignored for open sign-up
	})
	if err != nil {
		t.Fatalf("open register failed: %v", err)
	}
	if a, _ := roles.FindAssignmentByUserID(context.Background(), user.ID); a != nil {
		t.Errorf("open registration must not grant a role, got %+v", a)
	}
}

// ---------------------------------------------------------------------------
// Profile tests
// ---------------------------------------------------------------------------

func TestUserService_Profile_ResolvesRoleName(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	svc := NewUserService(users, roles, false, discardLogger)

	created, _ := svc.Register(context.Background(), ports.CreateUserInput{
		Email: "frank@example.com", Password: "pass", FullName: "Frank", RoleID: domain.RoleDoctor,
	})

	profile, err := svc.Profile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if profile.Role != "DOCTOR" {
		t.Errorf("expected role DOCTOR, got %q", profile.Role)
	}
	if profile.Email != "frank@example.com" {
		t.Errorf("unexpected email %q", profile.Email)
	}
}

func TestUserService_Profile_NoAssignment(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubRoleRepo(), false, discardLogger)

	created, _ := svc.Register(context.Background(), ports.CreateUserInput{
		Email: "gina@example.com", Password: "pass", FullName: "Gina",
	})

	profile, err := svc.Profile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if profile.Role != "" {
		t.Errorf("expected empty role, got %q", profile.Role)
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubRoleRepo(), false, discardLogger)

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update tests
// ---------------------------------------------------------------------------

func TestUserService_Update_PartialLeavesOtherFields(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubRoleRepo(), false, discardLogger)

	created, _ := svc.Register(context.Background(), ports.CreateUserInput{
		Email: "hank@example.com", Password: "pass", FullName: "Hank", PhoneNumber: "+521111",
	})

	updated, err := svc.Update(context.Background(), ports.UpdateUserInput{
		UserID:   created.ID,
		FullName: strPtr("Hank Hill"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.FullName != "Hank Hill" {
		t.Errorf("full name not updated: %q", updated.FullName)
	}
	if updated.Email != "hank@example.com" {
		t.Errorf("email must be untouched, got %q", updated.Email)
	}
	if updated.PhoneNumber != "+521111" {
		t.Errorf("phone must be untouched, got %q", updated.PhoneNumber)
	}
}

func TestUserService_Update_Idempotent(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubRoleRepo(), false, discardLogger)

	created, _ := svc.Register(context.Background(), ports.CreateUserInput{
		Email: "iris@example.com", Password: "pass", FullName: "Iris",
	})

	input := ports.UpdateUserInput{UserID: created.ID, FullName: strPtr("Iris B"), PhoneNumber: strPtr("+522222")}
	first, err := svc.Update(context.Background(), input)
	if err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	second, err := svc.Update(context.Background(), input)
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}

	if first.FullName != second.FullName || first.PhoneNumber != second.PhoneNumber || first.Email != second.Email {
		t.Errorf("applying the same changeset twice changed the result: %+v vs %+v", first, second)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubRoleRepo(), false, discardLogger)

	created, _ := svc.Register(context.Background(), ports.CreateUserInput{
		Email: "jack@example.com", Password: "oldpass", FullName: "Jack",
	})

	updated, err := svc.Update(context.Background(), ports.UpdateUserInput{
		UserID:   created.ID,
		Password: strPtr("newpass"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PasswordHash == "newpass" {
		t.Fatal("password must never be stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}

func TestUserService_Update_UnknownUser(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubRoleRepo(), false, discardLogger)

	_, err := svc.Update(context.Background(), ports.UpdateUserInput{
		UserID:   "missing",
		FullName: strPtr("Nobody"),
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestUserService_List_Defaults(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubRoleRepo(), false, discardLogger)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		if _, err := svc.Register(context.Background(), ports.CreateUserInput{Email: email, Password: "p", FullName: "U"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	out, err := svc.List(context.Background(), -5, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(out) != 3 {
		t.Errorf("expected 3 users, got %d", len(out))
	}
}
