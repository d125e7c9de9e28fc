package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

const (
	testSecret = "test-secret-at-least-32-chars-long-for-security"
	testIssuer = "preconsultation-test"
)

func TestJWTManager_GenerateAndValidate_Success(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	token, err := manager.GenerateAccessToken(Caller{UserID: "pt-1", Role: domain.CallerClient, Source: domain.SourceUser})
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	caller, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if caller.UserID != "pt-1" {
		t.Errorf("expected user pt-1, got %q", caller.UserID)
	}
	if caller.Role != domain.CallerClient {
		t.Errorf("expected role app_client, got %q", caller.Role)
	}
	if caller.Source != domain.SourceUser {
		t.Errorf("expected source USER, got %q", caller.Source)
	}
}

func TestJWTManager_GenerateAndValidate_Workflow(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	token, err := manager.GenerateAccessToken(Caller{UserID: "workflow-engine", Source: domain.SourceWorkflow})
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	caller, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if caller.Source != domain.SourceWorkflow {
		t.Errorf("expected source WORKFLOW, got %q", caller.Source)
	}
	if caller.Role != "" {
		t.Errorf("expected no role, got %q", caller.Role)
	}
}

func TestJWTManager_ValidateAccessToken_MissingSourceDefaultsToUser(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	token, err := manager.GenerateAccessToken(Caller{UserID: "cmo-1", Role: domain.CallerCMO})
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	caller, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if caller.Source != domain.SourceUser {
		t.Errorf("expected source USER, got %q", caller.Source)
	}
}

func TestJWTManager_ValidateAccessToken_UnknownSource(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-1",
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
		Source: "BATCH",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = manager.ValidateAccessToken(token)
	if err == nil || !strings.Contains(err.Error(), "invalid source") {
		t.Fatalf("expected invalid source error, got %v", err)
	}
}

func TestJWTManager_GenerateAccessToken_EmptyUser(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	if _, err := manager.GenerateAccessToken(Caller{}); err == nil {
		t.Fatal("expected error for empty user id")
	}
}

func TestJWTManager_ValidateAccessToken_Expired(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, -1*time.Hour) // Already expired

	token, err := manager.GenerateAccessToken(Caller{UserID: "pt-1"})
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, err = manager.ValidateAccessToken(token)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !strings.Contains(err.Error(), "expired") && !strings.Contains(err.Error(), "parse token") {
		t.Errorf("expected expiry-related error, got: %v", err)
	}
}

func TestJWTManager_ValidateAccessToken_InvalidSignature(t *testing.T) {
	manager1 := NewJWTManager(testSecret, testIssuer, 15*time.Minute)
	manager2 := NewJWTManager("different-secret-32-chars-long-for-security!!", testIssuer, 15*time.Minute)

	token, err := manager1.GenerateAccessToken(Caller{UserID: "pt-1"})
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := manager2.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestJWTManager_ValidateAccessToken_Malformed(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	malformedTokens := []string{
		"not.a.jwt",
		"invalid-token",
		"header.payload", // Missing signature
	}

	for _, token := range malformedTokens {
		if _, err := manager.ValidateAccessToken(token); err == nil {
			t.Errorf("expected error for malformed token %q, got nil", token)
		}
	}
}

func TestJWTManager_ValidateAccessToken_WrongIssuer(t *testing.T) {
	manager1 := NewJWTManager(testSecret, testIssuer, 15*time.Minute)
	manager2 := NewJWTManager(testSecret, "wrong-issuer", 15*time.Minute)

	token, err := manager1.GenerateAccessToken(Caller{UserID: "pt-1"})
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, err = manager2.ValidateAccessToken(token)
	if err == nil {
		t.Fatal("expected error for wrong issuer, got nil")
	}
	if !strings.Contains(err.Error(), "invalid issuer") {
		t.Errorf("expected 'invalid issuer' error, got: %v", err)
	}
}

func TestJWTManager_ValidateAccessToken_EmptyString(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	_, err := manager.ValidateAccessToken("")
	if err == nil {
		t.Fatal("expected error for empty token, got nil")
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Errorf("expected 'empty' error, got: %v", err)
	}
}

func signRaw(t *testing.T, method jwt.SigningMethod, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestJWTManager_ValidateAccessToken_RejectsOtherAlgorithms(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	token := signRaw(t, jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "pt-1",
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})

	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for HS512 token, got nil")
	}
}

func TestJWTManager_ValidateAccessToken_RequiresExpiry(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	token := signRaw(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "pt-1", Issuer: testIssuer})

	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for token without exp, got nil")
	}
}

func TestJWTManager_ValidateAccessToken_NormalizesRole(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	token := signRaw(t, jwt.SigningMethodHS256, accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "cmo-1",
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
		Role: "APP_CMO",
	})

	caller, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if caller.Role != domain.CallerCMO {
		t.Errorf("expected role app_cmo, got %q", caller.Role)
	}
	if !caller.Role.IsAdmin() {
		t.Error("expected APP_CMO token to carry an admin role")
	}
}
