package services

import (
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"gorm.io/gorm"
)

// AddressService handles a user's shipping addresses. Every operation is
// scoped to the owning user; foreign addresses behave as absent.
type AddressService struct {
	repo repositories.AddressRepository
}

// NewAddressService creates a new AddressService.
func NewAddressService(repo repositories.AddressRepository) *AddressService {
	return &AddressService{
		repo: repo,
	}
}

// ListAddresses retrieves the user's addresses.
func (s *AddressService) ListAddresses(userID string) ([]models.Address, error) {
	return s.repo.ListByUser(userID)
}

// CreateAddress creates an address owned by the user.
func (s *AddressService) CreateAddress(userID string, address *models.Address) error {
	address.UserID = userID
	return s.repo.Create(address)
}

// UpdateAddress updates an address the user owns.
func (s *AddressService) UpdateAddress(userID string, address *models.Address) error {
	existing, err := s.repo.GetByID(address.ID)
	if err != nil || existing.UserID != userID {
		return fmt.Errorf("address %s: %w", address.ID, ErrNotFound)
	}
	address.UserID = userID
	return s.repo.Update(address)
}

// DeleteAddress deletes an address the user owns.
func (s *AddressService) DeleteAddress(userID, addressID string) error {
	existing, err := s.repo.GetByID(addressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("address %s: %w", addressID, ErrNotFound)
		}
		return err
	}
	if existing.UserID != userID {
		return fmt.Errorf("address %s: %w", addressID, ErrNotFound)
	}
	return s.repo.Delete(addressID)
}
