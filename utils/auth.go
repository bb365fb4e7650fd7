package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenPurpose = "password_reset"

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrInvalidOTP   = errors.New("invalid or expired code")
)

// Claims is the principal carried by a session token
type Claims struct {
	UserID uint
	Role   string
	Email  string
}

// HashPassword creates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a password against a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken creates a session JWT for a user
func GenerateToken(user *models.User) (string, error) {
	cfg := config.Current()
	return signToken(jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"email":   user.Email,
		"exp":     time.Now().Add(cfg.Tunables.TokenTTL).Unix(),
	}, cfg.JWTSecret)
}

// ValidateToken verifies a session JWT and returns its claims
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Current().JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	// reset tokens must never authenticate a session
	if _, isReset := claims["purpose"]; isReset {
		return nil, ErrInvalidToken
	}
	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return nil, ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)

	return &Claims{UserID: uint(userID), Role: role, Email: email}, nil
}

// GenerateResetToken issues a short-lived password reset token. The signing
// key includes the current password hash, so any password change revokes it.
func GenerateResetToken(user *models.User) (string, error) {
	cfg := config.Current()
	return signToken(jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"purpose": resetTokenPurpose,
		"exp":     time.Now().Add(cfg.Tunables.ResetTokenTTL).Unix(),
	}, resetSigningKey(cfg.JWTSecret, user.Password))
}

// ValidateResetToken verifies a reset token. lookup loads the user named by
// the token so the signing key can be rebuilt from its current hash.
func ValidateResetToken(tokenString string, lookup func(userID uint) (*models.User, error)) (*models.User, error) {
	var user *models.User
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["purpose"] != resetTokenPurpose {
			return nil, ErrInvalidToken
		}
		userID, ok := claims["user_id"].(float64)
		if !ok {
			return nil, ErrInvalidToken
		}
		u, err := lookup(uint(userID))
		if err != nil {
			return nil, err
		}
		user = u
		return []byte(resetSigningKey(config.Current().JWTSecret, u.Password)), nil
	})
	if err != nil || !token.Valid || user == nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// GenerateOTP creates a random numeric code of the given length
func GenerateOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate otp: %v", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// VerifyOTP checks a submitted code against the one stored on the user
func VerifyOTP(user *models.User, code string, now time.Time) error {
	if user.ResetOTP == "" || user.ResetOTPExpiry == nil {
		return ErrInvalidOTP
	}
	if now.After(*user.ResetOTPExpiry) {
		return ErrInvalidOTP
	}
	if subtle.ConstantTimeCompare([]byte(user.ResetOTP), []byte(code)) != 1 {
		return ErrInvalidOTP
	}
	return nil
}

func signToken(claims jwt.MapClaims, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret not configured")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func resetSigningKey(secret, passwordHash string) string {
	return secret + passwordHash
}
