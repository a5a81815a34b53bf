package utils

import "testing"

func TestGenerateAndVerifyToken(t *testing.T) {
	SetSecret("test-secret")

	token, err := GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims["username"] != "alice" {
		t.Errorf("username = %v", claims["username"])
	}
	if uid, ok := claims["user_id"].(float64); !ok || uint(uid) != 42 {
		t.Errorf("user_id = %v", claims["user_id"])
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	if _, err := VerifyToken("not.a.token"); err == nil {
		t.Error("garbage token must be rejected")
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	SetSecret("first-secret")
	token, err := GenerateToken(1, "bob")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	SetSecret("second-secret")
	if _, err := VerifyToken(token); err == nil {
		t.Error("token signed with another secret must be rejected")
	}
}
