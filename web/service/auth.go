package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/starrep/starrep/config"
	"github.com/starrep/starrep/database"
	"github.com/starrep/starrep/database/model"
	"github.com/starrep/starrep/logger"
)

const (
	bcryptCost    = 10
	tokenLifetime = 24 * time.Hour
)

// Claims is the bearer token payload: the user's id and email plus the
// registered expiry.
type Claims struct {
	jwt.RegisteredClaims
	Id    int    `json:"id"`
	Email string `json:"email"`
}

// AuthService handles registration, login and bearer token verification.
type AuthService struct {
	DB        *gorm.DB
	JWTSecret []byte
}

func NewAuthService() *AuthService {
	return &AuthService{
		DB:        database.GetDB(),
		JWTSecret: config.GetJWTSecret(),
	}
}

// Register creates a user with a bcrypt-hashed password and returns the new
// user id. A taken email yields ErrDuplicateEmail.
func (s *AuthService) Register(email, rawPassword string) (int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcryptCost)
	if err != nil {
		return 0, err
	}
	u := &model.User{
		Email:    email,
		Password: string(hash),
	}
	if err := s.DB.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}
	return u.Id, nil
}

// Login checks the credentials and issues a signed token. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, rawPassword string) (string, *model.User, error) {
	var u model.User
	if err := s.DB.Where("email = ?", email).First(&u).Error; err != nil {
		if database.IsNotFound(err) {
			logger.Warning("invalid credentials for:", email)
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(rawPassword)); err != nil {
		logger.Warning("invalid credentials for:", email)
		return "", nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
		Id:    u.Id,
		Email: u.Email,
	})
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", nil, err
	}
	return signed, &u, nil
}

// VerifyToken validates the signature and expiry of a bearer token and
// returns its claims. Any failure reports ErrInvalidToken; a token is never
// partially trusted.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.JWTSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
