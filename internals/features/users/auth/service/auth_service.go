package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"odontocare_backend/internals/configs"
	"odontocare_backend/internals/features/users/auth/model"
)

const AccessTokenTTL = 2 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is deactivated")
)

// Login verifies the credentials and issues the HS256 access token carrying
// the role claim the Identity Guard consumes.
func Login(db *gorm.DB, email, password string) (string, *model.UserModel, error) {
	var user model.UserModel
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !CheckPassword(user.Password, password) {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, ErrAccountInactive
	}

	token, err := IssueAccessToken(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func IssueAccessToken(user *model.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("missing JWT secret")
	}

	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"exp":       time.Now().Add(AccessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

// Logout revokes the presented token by blacklisting it until its natural
// expiry would have passed.
func Logout(db *gorm.DB, token string) error {
	entry := model.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().Add(AccessTokenTTL),
	}
	return db.Create(&entry).Error
}
