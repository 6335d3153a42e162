package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kdanquah/regportal/internal/app/models"
	"github.com/kdanquah/regportal/internal/app/models/dto"
	"github.com/kdanquah/regportal/internal/pkg/apperrors"
	"github.com/kdanquah/regportal/internal/pkg/auth"
)

func newAuthFixture(t *testing.T, tokenTTL time.Duration) AuthService {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatal(err)
	}
	admins := &fakeAdminStore{admins: map[string]models.Admin{
		"registrar": {ID: 1, Username: "registrar", PasswordHash: hash},
	}}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: tokenTTL,
		TokenIssuer:    "regportal-test",
	})
	return NewAuthService(admins, jwtService)
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newAuthFixture(t, time.Hour)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "registrar",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("empty access token")
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("token type = %q", resp.TokenType)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("expires in = %d, want 3600", resp.ExpiresIn)
	}

	claims, err := svc.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.AdminID != 1 || claims.Username != "registrar" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthFixture(t, time.Hour)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "registrar",
		Password: "wrong",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthFixture(t, time.Hour)

	// unknown usernames look exactly like wrong passwords
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "correct-horse",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newAuthFixture(t, -time.Hour)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "registrar",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	_, err = svc.ValidateToken(resp.AccessToken)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestValidateGarbageToken(t *testing.T) {
	svc := newAuthFixture(t, time.Hour)

	if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}
