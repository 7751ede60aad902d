package auth

import (
	"testing"

	"github.com/hankosign/hankosign/internal/config"
	"github.com/hankosign/hankosign/internal/constant"
)

// Perform token generation and verify the generated token to ensure VerifyJwtToken is correct
func TestJWT(t *testing.T) {
	jwtService := NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, nil)

	refreshToken, accessToken, err := jwtService.GenerateRefreshAndAccessToken(JWTPayload{
		ID:    "id1234",
		Email: "test@hankosign.jp",
		Name:  "テスト太郎",
		Role:  constant.RoleUser,
	})
	if err != nil {
		t.Fatalf(
			"An error occurred during refresh token and access token generation. Error: %v", err)
	}

	refreshClaims, err := jwtService.VerifyJwtToken(*refreshToken)
	if err != nil {
		t.Errorf(
			"An error occurred during refresh token verification. Error: %v", err)
	}
	if refreshClaims.Type != constant.JWT_TYPE_REFRESH {
		t.Errorf("Expected refresh token type %q, got %q", constant.JWT_TYPE_REFRESH, refreshClaims.Type)
	}

	accessClaims, err := jwtService.VerifyJwtToken(*accessToken)
	if err != nil {
		t.Errorf(
			"An error occurred during access token verification. Error: %v", err)
	}
	if accessClaims.Type != constant.JWT_TYPE_ACCESS {
		t.Errorf("Expected access token type %q, got %q", constant.JWT_TYPE_ACCESS, accessClaims.Type)
	}

	if accessClaims.User.ID != "id1234" || accessClaims.User.Role != constant.RoleUser {
		t.Errorf("Unexpected payload after verification: %+v", accessClaims.User)
	}
}

func TestVerifyJwtTokenWrongSecret(t *testing.T) {
	jwtService := NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, nil)
	other := NewJwt(config.AuthConfig{JWT_SECRET: "other-secret"}, nil)

	_, accessToken, err := jwtService.GenerateRefreshAndAccessToken(JWTPayload{ID: "id1234"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := other.VerifyJwtToken(*accessToken); err == nil {
		t.Error("Expected verification with a different secret to fail")
	}
}
