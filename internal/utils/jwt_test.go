package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	email := "jane@example.com"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, email, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Email != email {
		t.Errorf("expected email %s, got %s", email, token.Email)
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != email {
		t.Errorf("expected subject %q, got %s", email, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		email    string
		duration time.Duration
		key      string
	}{
		{name: "empty issuer", email: "jane@example.com", duration: time.Hour, key: "secret"},
		{name: "empty email", issuer: "issuer", duration: time.Hour, key: "secret"},
		{name: "zero duration", issuer: "issuer", email: "jane@example.com", key: "secret"},
		{name: "empty sign key", issuer: "issuer", email: "jane@example.com", duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.email, tt.duration, tt.key); err == nil {
				t.Error("expected error for invalid params, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issuer := "test-issuer"
	email := "jane@example.com"
	key := "secret-key"

	issued, err := GenerateJWTToken(issuer, email, time.Hour, key)
	if err != nil {
		t.Fatalf("generating test token: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.Email != email {
		t.Errorf("expected email %s, got %s", email, parsed.Email)
	}
	if parsed.SignedString != issued.SignedString {
		t.Error("expected parsed token to carry the original signed string")
	}
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	issued, err := GenerateJWTToken("issuer", "jane@example.com", time.Hour, "right-key")
	if err != nil {
		t.Fatalf("generating test token: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "wrong-key", "issuer"); err == nil {
		t.Error("expected signature verification error, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("issuer", "jane@example.com", time.Hour, "secret")
	if err != nil {
		t.Fatalf("generating test token: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "secret", "another-issuer"); err == nil {
		t.Error("expected issuer mismatch error, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    "issuer",
		Subject:   "jane@example.com",
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(expired, "secret", "issuer"); err == nil {
		t.Error("expected expiration error, got nil")
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    "issuer",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(noSubject, "secret", "issuer"); err == nil {
		t.Error("expected empty subject error, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer header", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "extra surrounding spaces", header: "  Bearer abc.def.ghi  ", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer ", wantErr: true},
		{name: "no scheme", header: "abc.def.ghi", wantErr: true},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected token %q, got %q", tt.want, got)
			}
		})
	}
}
