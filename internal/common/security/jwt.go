package security

import (
	"errors"
	"time"

	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

// GenerateAccessToken mints the short-lived token carried in the
// Authorization header.
func GenerateAccessToken(userID, username string, roles []string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"roles":    roles,
		"exp":      time.Now().Add(config.AppConfig.AccessExp).Unix(),
		"iat":      time.Now().Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// GenerateRefreshToken mints the long-lived token stored in the httpOnly
// cookie. It only names the user; roles are re-read on refresh.
func GenerateRefreshToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(config.AppConfig.RefreshExp).Unix(),
		"iat":      time.Now().Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// UsernameFromRefreshToken verifies a refresh token and extracts its
// username claim.
func UsernameFromRefreshToken(tokenString string) (string, error) {
	token, err := jwtauth.VerifyToken(TokenAuth, tokenString)
	if err != nil {
		return "", err
	}
	raw, ok := token.Get("username")
	if !ok {
		return "", errors.New("username claim is missing")
	}
	username, ok := raw.(string)
	if !ok || username == "" {
		return "", errors.New("username claim is not a string")
	}
	return username, nil
}

// Helper functions to extract claims, can be used in middleware or services
func GetUserIDFromClaims(claims map[string]interface{}) (string, error) {
	id, ok := claims["user_id"].(string)
	if !ok {
		return "", errors.New("user_id claim is missing or not a string")
	}
	return id, nil
}

func GetUsernameFromClaims(claims map[string]interface{}) (string, error) {
	username, ok := claims["username"].(string)
	if !ok {
		return "", errors.New("username claim is missing or not a string")
	}
	return username, nil
}

func GetRolesFromClaims(claims map[string]interface{}) ([]string, error) {
	raw, ok := claims["roles"].([]interface{})
	if !ok {
		return nil, errors.New("roles claim is missing or not a list")
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		s, ok := r.(string)
		if !ok {
			return nil, errors.New("roles claim contains a non-string entry")
		}
		roles = append(roles, s)
	}
	return roles, nil
}
