package services

import (
	"context"
	"testing"
	"time"

	"github.com/fundflow/backend/errs"
	"github.com/fundflow/backend/models"
)

func TestRegisterAssignsDefaultRole(t *testing.T) {
	uow := testUoW(t)
	ctx := context.Background()

	svc := NewAuthService("test-secret", time.Hour)
	user, err := svc.Register(ctx, uow, RegisterInput{
		Email:    "new@example.com",
		Name:     "New User",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.PasswordHash == "" || user.PasswordHash == "hunter2hunter2" {
		t.Fatal("Register() stored the password unhashed")
	}

	stored, err := uow.Users.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if stored.Role == nil || stored.Role.Name != models.RoleUser {
		t.Fatalf("Register() role = %+v, want %q", stored.Role, models.RoleUser)
	}
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	uow := testUoW(t)
	ctx := context.Background()

	svc := NewAuthService("test-secret", time.Hour)
	in := RegisterInput{Email: "dup@example.com", Name: "First", Password: "hunter2hunter2"}
	if _, err := svc.Register(ctx, uow, in); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if _, err := svc.Register(ctx, uow, in); !errs.IsConflict(err) {
		t.Fatalf("second Register() error = %v, want conflict", err)
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	uow := testUoW(t)
	ctx := context.Background()

	svc := NewAuthService("test-secret", time.Hour)
	registered, err := svc.Register(ctx, uow, RegisterInput{
		Email:    "member@example.com",
		Name:     "Member",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	token, user, err := svc.Login(ctx, uow, LoginInput{
		Email:    "member@example.com",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("Login() user id = %d, want %d", user.ID, registered.ID)
	}

	claims, err := svc.DecodeToken(token)
	if err != nil {
		t.Fatalf("DecodeToken() error = %v", err)
	}
	if claims.UserID != registered.ID {
		t.Fatalf("token user_id = %d, want %d", claims.UserID, registered.ID)
	}
	if claims.Role != models.RoleUser {
		t.Fatalf("token role = %q, want %q", claims.Role, models.RoleUser)
	}
}

func TestLoginWrongPasswordIsUnauthorized(t *testing.T) {
	uow := testUoW(t)
	ctx := context.Background()

	svc := NewAuthService("test-secret", time.Hour)
	if _, err := svc.Register(ctx, uow, RegisterInput{
		Email:    "member@example.com",
		Name:     "Member",
		Password: "hunter2hunter2",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, _, err := svc.Login(ctx, uow, LoginInput{
		Email:    "member@example.com",
		Password: "wrong-password",
	}); !errs.IsUnauthorized(err) {
		t.Fatalf("Login() error = %v, want unauthorized", err)
	}

	if _, _, err := svc.Login(ctx, uow, LoginInput{
		Email:    "nobody@example.com",
		Password: "hunter2hunter2",
	}); !errs.IsUnauthorized(err) {
		t.Fatalf("Login() for unknown email error = %v, want unauthorized", err)
	}
}

func TestDecodeTokenRejectsForeignSignature(t *testing.T) {
	issuer := NewAuthService("secret-one", time.Hour)
	verifier := NewAuthService("secret-two", time.Hour)

	token, err := issuer.IssueToken(&models.User{ID: 1})
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if _, err := verifier.DecodeToken(token); !errs.IsUnauthorized(err) {
		t.Fatalf("DecodeToken() with wrong secret error = %v, want unauthorized", err)
	}
}

func TestDecodeTokenRejectsExpired(t *testing.T) {
	svc := NewAuthService("test-secret", -time.Minute)

	token, err := svc.IssueToken(&models.User{ID: 1})
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if _, err := svc.DecodeToken(token); !errs.IsUnauthorized(err) {
		t.Fatalf("DecodeToken() of an expired token error = %v, want unauthorized", err)
	}
}
