package auth

import (
	"testing"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Ertdfgx@0")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "Ertdfgx@0" {
		t.Fatal("password not hashed")
	}
	if !CheckPasswordHash("Ertdfgx@0", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "admin@example.com", "Admin")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "admin@example.com" || claims.Name != "Admin" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.Issuer != "hiring-system" {
		t.Fatalf("issuer = %s, want hiring-system", claims.Issuer)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Fatal("garbage token validated")
	}
}
