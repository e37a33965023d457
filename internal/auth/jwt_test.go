package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "test-secret-at-least-32-chars-long-for-security"

func TestJWTVerifier_SignAndVerify(t *testing.T) {
	t.Parallel()

	v := NewJWTVerifier(testSecret, "https://auth.example.com")
	want := Identity{ID: uuid.New(), Email: "user@example.com"}

	token, err := v.Sign(want, time.Minute)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	got, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got != want {
		t.Errorf("Verify() = %+v, want %+v", got, want)
	}
}

func TestJWTVerifier_Rejects(t *testing.T) {
	t.Parallel()

	v := NewJWTVerifier(testSecret, "issuer-a")
	id := Identity{ID: uuid.New()}

	expired, _ := v.Sign(id, -time.Minute)
	otherIssuer, _ := NewJWTVerifier(testSecret, "issuer-b").Sign(id, time.Minute)
	otherSecret, _ := NewJWTVerifier("another-secret-that-is-32-chars-long!", "issuer-a").Sign(id, time.Minute)

	badSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			Issuer:    "issuer-a",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString([]byte(testSecret))

	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: id.ID.String(), Issuer: "issuer-a"},
	}).SignedString([]byte(testSecret))

	wrongAlg, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID.String(),
			Issuer:    "issuer-a",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString([]byte(testSecret))

	tests := map[string]string{
		"empty":        "",
		"garbage":      "not.a.jwt",
		"expired":      expired,
		"issuer":       otherIssuer,
		"secret":       otherSecret,
		"subject":      badSubject,
		"no expiry":    noExpiry,
		"wrong method": wrongAlg,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := v.Verify(token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestJWTVerifier_EmptyIssuerSkipsCheck(t *testing.T) {
	t.Parallel()

	id := Identity{ID: uuid.New()}
	token, err := NewJWTVerifier(testSecret, "some-issuer").Sign(id, time.Minute)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := NewJWTVerifier(testSecret, "").Verify(token); err != nil {
		t.Errorf("Verify() with empty issuer: %v", err)
	}
}

func TestIdentityContext(t *testing.T) {
	t.Parallel()

	if _, ok := IdentityFromCtx(context.Background()); ok {
		t.Fatal("empty context should carry no identity")
	}

	want := Identity{ID: uuid.New(), Email: "a@b.c"}
	got, ok := IdentityFromCtx(WithIdentity(context.Background(), want))
	if !ok || got != want {
		t.Errorf("IdentityFromCtx() = %+v, %v; want %+v", got, ok, want)
	}
}
