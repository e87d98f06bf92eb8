package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/starrep/starrep/database"
	"github.com/starrep/starrep/database/model"
	"github.com/starrep/starrep/stellar"
)

// WalletService links Stellar accounts to users and reads balances through
// the Horizon client.
type WalletService struct {
	DB      *gorm.DB
	Horizon *stellar.Client
}

func NewWalletService(horizon *stellar.Client) *WalletService {
	return &WalletService{
		DB:      database.GetDB(),
		Horizon: horizon,
	}
}

// Connect links the address to the user. Linking an address owned by a
// different user fails with ErrAddressAlreadyLinked; re-linking the caller's
// own address is idempotent.
func (s *WalletService) Connect(userId int, publicKey string) (string, error) {
	var existing model.User
	err := s.DB.Where("stellar_address = ?", publicKey).First(&existing).Error
	if err == nil && existing.Id != userId {
		return "", ErrAddressAlreadyLinked
	}
	if err != nil && !database.IsNotFound(err) {
		return "", err
	}

	err = s.DB.Model(model.User{}).
		Where("id = ?", userId).
		Update("stellar_address", publicKey).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent link of the same address.
			return "", ErrAddressAlreadyLinked
		}
		return "", err
	}
	return publicKey, nil
}

// Status returns the linked address, nil when no wallet is on file.
func (s *WalletService) Status(userId int) (*string, error) {
	user := &model.User{}
	err := s.DB.Model(model.User{}).
		Select("stellar_address").
		Where("id = ?", userId).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user.StellarAddress, nil
}

// Balance looks up the native balance of the user's linked wallet on
// Horizon. An unfunded (unknown) account reads as "0"; a missing link fails
// with ErrNotConnected.
func (s *WalletService) Balance(userId int) (string, error) {
	address, err := s.Status(userId)
	if err != nil {
		return "", err
	}
	if address == nil || *address == "" {
		return "", ErrNotConnected
	}

	balance, err := s.Horizon.LoadAccountBalance(*address)
	if errors.Is(err, stellar.ErrAccountNotFound) {
		return "0", nil
	}
	if err != nil {
		return "", err
	}
	return balance, nil
}
