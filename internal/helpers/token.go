package helpers

import (
	"errors"
	"strings"
	"time"

	"api/internal/configuration"
	"api/internal/models"

	"github.com/alexedwards/argon2id"
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenExpiry is the access token lifetime in minutes.
const AccessTokenExpiry = 60

// NewAccessToken issues a signed access token for a user. Token issuance
// normally lives in the external auth service; this is used by the admin
// bootstrap and by tests.
func NewAccessToken(jwtSecret string, user *models.User) (string, error) {
	claims := models.UserClaims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Issuer:  configuration.AppName,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{configuration.AudienceAccessToken},
			IssuedAt:  &jwt.NumericDate{Time: time.Now()},
			ExpiresAt: &jwt.NumericDate{Time: time.Now().Add(time.Minute * AccessTokenExpiry)},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ParseAccessToken validates a "Bearer <token>" header and returns the
// embedded claims. Signature and expiry are checked; any failure is
// reported as a single opaque error.
func ParseAccessToken(jwtSecret string, tokenString string) (models.UserClaims, error) {
	if !strings.HasPrefix(tokenString, "Bearer ") {
		return models.UserClaims{}, errors.New("invalid token")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	claims := &models.UserClaims{}

	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		},
	)
	if err != nil {
		return models.UserClaims{}, errors.New("invalid token")
	}

	return *claims, nil
}

func CreateHash(password string) (string, error) {
	argonParams := argon2id.Params{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  32,
		KeyLength:   32,
	}
	hash, err := argon2id.CreateHash(password, &argonParams)
	if err != nil {
		return "", errors.New("can not create hash password")
	}

	return hash, nil
}
