package service

import (
	"context"
	"errors"
	"fmt"

	"fintrack/internal/auth"
	"fintrack/internal/logger"
	usermodel "fintrack/internal/models/user"
	"fintrack/internal/storage"
	"fintrack/internal/validation"
)

// dummyHash is compared against when login hits an unknown email, so the
// request costs a bcrypt verification either way.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type UserService struct {
	users  storage.UserStore
	hasher *auth.PasswordHasher
	jwt    *auth.JWTManager
	log    *logger.Logger
}

func NewUserService(users storage.UserStore, hasher *auth.PasswordHasher, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		users:  users,
		hasher: hasher,
		jwt:    jwtManager,
		log:    logger.New("user-service"),
	}
}

// Signup validates the payload, checks email uniqueness, hashes the password
// and persists the user. The returned user never carries the hash.
func (s *UserService) Signup(ctx context.Context, req *usermodel.CreateUserRequest) (*usermodel.User, error) {
	if err := validation.ValidateName(req.Name); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	existing, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, req, passwordHash)
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info("user created: %s", user.ID)

	user.PasswordHash = ""
	return user, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both come back as ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, req *usermodel.LoginRequest) (*usermodel.AuthResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		// burn a comparison so the miss is not observably faster
		_ = s.hasher.Check(dummyHash, req.Password)
		return nil, ErrInvalidCredentials
	}

	if err := s.hasher.Check(user.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	user.PasswordHash = ""
	return &usermodel.AuthResult{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Profile returns the public fields of the user resolved from a verified token.
func (s *UserService) Profile(ctx context.Context, userID string) (*usermodel.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.PasswordHash = ""
	return user, nil
}
