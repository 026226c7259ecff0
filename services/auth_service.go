package services

import (
	"context"
	"crypto-cart/models"
	"crypto-cart/repositories"
	"crypto-cart/utils"
	"errors"
	"fmt"
	"strings"
)

const (
	DemoUserEmail    = "user@example.com"
	DemoUserPassword = "password123"
	DemoUserName     = "Demo User"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrInvalidRegistration = errors.New("invalid registration")
)

// AuthService is the storefront's mock sign-in. Users live in memory and
// the signed-in identity is kept in the session's auth snapshot. It is a
// placeholder, not a credential model.
type AuthService struct {
	userRepo  *repositories.UserRepository
	stateRepo *repositories.AuthStateRepository
	tokens    *utils.TokenIssuer
}

func NewAuthService(userRepo *repositories.UserRepository, stateRepo *repositories.AuthStateRepository, tokens *utils.TokenIssuer) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		stateRepo: stateRepo,
		tokens:    tokens,
	}
}

// SeedDemoUser registers the demo account unless it already exists.
func (s *AuthService) SeedDemoUser() error {
	if _, err := s.userRepo.FindByEmail(DemoUserEmail); err == nil {
		return nil
	}

	hash, err := utils.HashPassword(DemoUserPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	return s.userRepo.Create(&models.User{
		ID:       "1",
		Email:    DemoUserEmail,
		Name:     DemoUserName,
		Password: hash,
	})
}

func (s *AuthService) Register(ctx context.Context, sessionID string, req models.RegisterRequest) (*models.LoginResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistration, err)
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, repositories.ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Name:     strings.TrimSpace(req.Name),
		Password: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.signIn(ctx, sessionID, user)
}

func (s *AuthService) Login(ctx context.Context, sessionID string, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	return s.signIn(ctx, sessionID, user)
}

func (s *AuthService) signIn(ctx context.Context, sessionID string, user *models.User) (*models.LoginResponse, error) {
	sessionUser := models.SessionUser{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		IsAuthenticated: true,
	}

	_, err := s.stateRepo.Update(ctx, sessionID, func(state *models.AuthSnapshot) error {
		state.User = &sessionUser
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, sessionID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: sessionUser}, nil
}

// Logout forgets the signed-in user. Saved addresses stay with the session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	_, err := s.stateRepo.Update(ctx, sessionID, func(state *models.AuthSnapshot) error {
		state.User = nil
		return nil
	})
	return err
}

// GetProfile returns the user signed in on sessionID.
func (s *AuthService) GetProfile(ctx context.Context, sessionID string) (*models.SessionUser, error) {
	state, err := s.stateRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.User == nil || !state.User.IsAuthenticated {
		return nil, ErrNotAuthenticated
	}
	return state.User, nil
}

// IsSignedIn reports whether userID is the user signed in on sessionID.
func (s *AuthService) IsSignedIn(ctx context.Context, sessionID, userID string) (bool, error) {
	state, err := s.stateRepo.Find(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return state.User != nil && state.User.IsAuthenticated && state.User.ID == userID, nil
}
