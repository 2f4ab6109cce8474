package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/satram-seva/registration-api/internal/models"
	"gorm.io/gorm"
)

// GormStore implements RegistrationStore on a gorm-managed database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetByMobile(ctx context.Context, mobile string) (*models.Registration, error) {
	key := NormalizeMobile(mobile)
	var reg models.Registration
	err := s.db.WithContext(ctx).Where("mobile = ?", key).First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// Upsert writes reg under its normalized mobile, overwriting an existing
// row that shares the mobile or the registration token, and appends a
// history snapshot of the new state.
func (s *GormStore) Upsert(ctx context.Context, reg *models.Registration) error {
	reg.Mobile = NormalizeMobile(reg.Primary.Mobile)
	if reg.Mobile == "" {
		return fmt.Errorf("registration has no mobile number")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// An edit may change the mobile number, so the existing row can be
		// reachable by either key: the new mobile, or the registration token
		// when the registrant is re-keying their own record.
		var existing models.Registration
		err := tx.Where("mobile = ?", reg.Mobile).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = tx.Where("registration_id = ?", reg.RegistrationID).First(&existing).Error
		}
		switch {
		case err == nil:
			reg.ID = existing.ID
			reg.CreatedAt = existing.CreatedAt
		case errors.Is(err, gorm.ErrRecordNotFound):
			// fresh record
		default:
			return err
		}

		if err := tx.Save(reg).Error; err != nil {
			return err
		}

		snapshot, err := json.Marshal(reg)
		if err != nil {
			return err
		}
		history := models.RegistrationHistory{
			RegistrationID: reg.RegistrationID,
			Mobile:         reg.Mobile,
			Data:           string(snapshot),
		}
		return tx.Create(&history).Error
	})
}

// ListAll returns every registration, most recently created first.
func (s *GormStore) ListAll(ctx context.Context) ([]models.Registration, error) {
	var regs []models.Registration
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (s *GormStore) DeleteByMobile(ctx context.Context, mobile string) error {
	key := NormalizeMobile(mobile)
	res := s.db.WithContext(ctx).Where("mobile = ?", key).Delete(&models.Registration{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
