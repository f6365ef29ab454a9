package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/matalogics/inventory-api/internal/core/domain"
	"github.com/matalogics/inventory-api/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, email, password string, role domain.Role, status domain.UserStatus) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u, err := repo.Create(context.Background(), &domain.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func newAuthService(repo *stubUserRepo, revoked *stubRevocationList) *AuthService {
	return NewAuthService(repo, revoked, "secret", time.Hour, zerolog.Nop())
}

func TestAuthenticate_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "admin@x.com", "admin123", domain.RoleAdmin, domain.StatusActive)
	svc := newAuthService(repo, newStubRevocationList())

	identity, token, err := svc.Authenticate(context.Background(), "admin@x.com", "admin123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if identity.Role != domain.RoleAdmin {
		t.Fatalf("role = %s, want Admin", identity.Role)
	}

	// The issued credential verifies back to the Admin identity.
	verified, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if verified.Role != domain.RoleAdmin {
		t.Fatalf("verified role = %s, want Admin", verified.Role)
	}
}

func TestAuthenticate_CaseInsensitiveEmail(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "admin@x.com", "admin123", domain.RoleAdmin, domain.StatusActive)
	svc := newAuthService(repo, newStubRevocationList())

	if _, _, err := svc.Authenticate(context.Background(), "Admin@X.Com", "admin123"); err != nil {
		t.Fatalf("mixed-case email: %v", err)
	}
}

func TestAuthenticate_Indistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "admin@x.com", "admin123", domain.RoleAdmin, domain.StatusActive)
	svc := newAuthService(repo, newStubRevocationList())

	_, _, wrongPass := svc.Authenticate(context.Background(), "admin@x.com", "nope")
	_, _, noUser := svc.Authenticate(context.Background(), "ghost@x.com", "admin123")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v", wrongPass)
	}
	if !errors.Is(noUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Fatalf("errors must be indistinguishable: %q vs %q", wrongPass, noUser)
	}
}

func TestAuthenticate_DisabledAccount(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "off@x.com", "pass123", domain.RoleViewer, domain.StatusDisabled)
	svc := newAuthService(repo, newStubRevocationList())

	if _, _, err := svc.Authenticate(context.Background(), "off@x.com", "pass123"); !errors.Is(err, domain.ErrAccountDisabled) {
		t.Fatalf("got %v, want ErrAccountDisabled", err)
	}
}

func TestVerify_DisabledAfterIssue(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "m@x.com", "pass123", domain.RoleManager, domain.StatusActive)
	svc := newAuthService(repo, newStubRevocationList())

	_, token, err := svc.Authenticate(context.Background(), "m@x.com", "pass123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	disabled := domain.StatusDisabled
	if _, err := repo.Update(context.Background(), u.ID, ports.UserUpdate{Status: &disabled}); err != nil {
		t.Fatalf("disable: %v", err)
	}

	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrAccountDisabled) {
		t.Fatalf("got %v, want ErrAccountDisabled", err)
	}
}

func TestVerify_RoleResolvedLive(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "m@x.com", "pass123", domain.RoleManager, domain.StatusActive)
	svc := newAuthService(repo, newStubRevocationList())

	_, token, err := svc.Authenticate(context.Background(), "m@x.com", "pass123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	// Demote after issuance; the old token must not retain Manager rights.
	viewer := domain.RoleViewer
	if _, err := repo.Update(context.Background(), u.ID, ports.UserUpdate{Role: &viewer}); err != nil {
		t.Fatalf("demote: %v", err)
	}

	identity, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if identity.Role != domain.RoleViewer {
		t.Fatalf("role = %s, want Viewer (live record wins over token claim)", identity.Role)
	}
}

func TestVerify_Garbage(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubRevocationList())

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.Verify(context.Background(), tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("Verify(%q): got %v, want ErrInvalidToken", tok, err)
		}
	}
}

func TestVerify_Expired(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "m@x.com", "pass123", domain.RoleManager, domain.StatusActive)
	svc := newAuthService(repo, newStubRevocationList())

	claims := tokenClaims{
		Role: domain.RoleManager,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ID:        "jti-expired",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(context.Background(), expired); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}
}

func TestVerify_WrongSignature(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "m@x.com", "pass123", domain.RoleManager, domain.StatusActive)
	svc := newAuthService(repo, newStubRevocationList())

	claims := tokenClaims{
		Role: domain.RoleAdmin, // forged escalation attempt
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(context.Background(), forged); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "m@x.com", "pass123", domain.RoleManager, domain.StatusActive)
	revoked := newStubRevocationList()
	svc := newAuthService(repo, revoked)

	_, token, err := svc.Authenticate(context.Background(), "m@x.com", "pass123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("revoked token verified: got %v, want ErrInvalidToken", err)
	}
}

func TestVerify_RevocationStoreDown(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "m@x.com", "pass123", domain.RoleManager, domain.StatusActive)
	revoked := newStubRevocationList()
	svc := newAuthService(repo, revoked)

	_, token, err := svc.Authenticate(context.Background(), "m@x.com", "pass123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	revoked.err = domain.ErrUpstream
	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("got %v, want ErrUpstream (fail closed)", err)
	}
}
