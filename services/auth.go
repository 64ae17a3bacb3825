package services

import (
	"context"
	"time"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/errs"
	"github.com/fundflow/backend/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenClaims is the payload of an issued access token. The role name is
// embedded so permission checks do not need a database round-trip.
type TokenClaims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService struct {
	secret   []byte
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewAuthService(secret string, tokenTTL time.Duration) AuthService {
	return AuthService{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   log.With().Str("service", "auth").Logger(),
	}
}

// Register creates an account with the default user role.
func (s AuthService) Register(ctx context.Context, uow *database.UnitOfWork, in RegisterInput) (*models.User, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	role, err := uow.Roles.Repo.FindOne(ctx, database.Filters{"name": models.RoleUser})
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errs.NewInternalError("default role is not provisioned")
	}
	taken, err := uow.Users.Exists(ctx, database.Filters{"email": in.Email})
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewConflictError("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to hash password", err)
	}
	user := &models.User{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		RoleID:       role.ID,
	}
	return uow.Users.Create(ctx, user)
}

// Login verifies credentials and issues an access token.
func (s AuthService) Login(ctx context.Context, uow *database.UnitOfWork, in LoginInput) (string, *models.User, error) {
	if err := validateInput(in); err != nil {
		return "", nil, err
	}
	user, err := uow.Users.FindOne(ctx, database.Filters{"email": in.Email})
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, errs.NewUnauthorizedError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, errs.NewUnauthorizedError("invalid credentials")
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// IssueToken signs an HS256 access token for the user.
func (s AuthService) IssueToken(user *models.User) (string, error) {
	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}
	now := time.Now()
	claims := TokenClaims{
		UserID: user.ID,
		Role:   roleName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errs.NewInternalErrorWithCause("failed to sign token", err)
	}
	return token, nil
}

// DecodeToken parses and verifies an access token.
func (s AuthService) DecodeToken(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errs.NewInvalidTokenError(err)
	}
	return claims, nil
}
