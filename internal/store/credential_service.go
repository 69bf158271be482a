package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nbekzhan/liftlog/internal/models"
)

// SaveCredential stores the login for the trainer backend, replacing any
// previous one. The local store is the terminal analogue of the browser's
// token storage.
func SaveCredential(userID, token string) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Credential{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Credential{UserID: userID, Token: token}).Error
	})
}

// GetCredential returns the stored login, or nil when not logged in
func GetCredential() (*models.Credential, error) {
	var cred models.Credential
	err := DB.Order("created_at DESC").First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading credential: %w", err)
	}
	return &cred, nil
}

// ClearCredential removes the stored login
func ClearCredential() error {
	return DB.Where("1 = 1").Delete(&models.Credential{}).Error
}
