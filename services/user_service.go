package services

import (
	"context"
	"crypto-cart/models"
	"crypto-cart/repositories"
	"crypto-cart/utils"
	"errors"
	"fmt"
)

var (
	ErrAddressNotFound = errors.New("address not found")
	ErrInvalidAddress  = errors.New("invalid address")
)

// UserService manages the saved shipping addresses of a session.
type UserService struct {
	stateRepo *repositories.AuthStateRepository
}

func NewUserService(stateRepo *repositories.AuthStateRepository) *UserService {
	return &UserService{stateRepo: stateRepo}
}

func (s *UserService) GetAddresses(ctx context.Context, sessionID string) ([]models.Address, error) {
	state, err := s.stateRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return state.Addresses, nil
}

func (s *UserService) AddAddress(ctx context.Context, sessionID string, address models.Address) ([]models.Address, error) {
	if err := utils.ValidateStruct(address); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	state, err := s.stateRepo.Update(ctx, sessionID, func(state *models.AuthSnapshot) error {
		state.Addresses = append(state.Addresses, address)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state.Addresses, nil
}

func (s *UserService) UpdateAddress(ctx context.Context, sessionID string, index int, address models.Address) ([]models.Address, error) {
	if err := utils.ValidateStruct(address); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	state, err := s.stateRepo.Update(ctx, sessionID, func(state *models.AuthSnapshot) error {
		if index < 0 || index >= len(state.Addresses) {
			return ErrAddressNotFound
		}
		state.Addresses[index] = address
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state.Addresses, nil
}

func (s *UserService) RemoveAddress(ctx context.Context, sessionID string, index int) ([]models.Address, error) {
	state, err := s.stateRepo.Update(ctx, sessionID, func(state *models.AuthSnapshot) error {
		if index < 0 || index >= len(state.Addresses) {
			return ErrAddressNotFound
		}
		state.Addresses = append(state.Addresses[:index], state.Addresses[index+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state.Addresses, nil
}

// SaveAddress appends address to the session's address book unless an equal
// entry is already saved.
func (s *UserService) SaveAddress(ctx context.Context, sessionID string, address models.Address) error {
	_, err := s.stateRepo.Update(ctx, sessionID, func(state *models.AuthSnapshot) error {
		for _, saved := range state.Addresses {
			if saved == address {
				return nil
			}
		}
		state.Addresses = append(state.Addresses, address)
		return nil
	})
	return err
}
