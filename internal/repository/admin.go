package repository

import (
	"context"
	"time"

	"lawsite-api/internal/apperr"
	"lawsite-api/internal/model"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Count(ctx context.Context) (int64, error)
	FindActiveByEmail(ctx context.Context, email string) (*model.Admin, error)
	FindByID(ctx context.Context, id uint) (*model.Admin, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, admin *model.Admin) error
	// CreateFirst inserts the bootstrap sentinel and the admin in one
	// transaction; a concurrent bootstrap loses on the sentinel's primary
	// key, regardless of which email it carries.
	CreateFirst(ctx context.Context, admin *model.Admin) error
	List(ctx context.Context, page, limit int) ([]model.Admin, int64, error)
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
	Deactivate(ctx context.Context, id uint) error
	CountActiveByRole(ctx context.Context, role string) (int64, error)
	HardDeleteByEmail(ctx context.Context, email string) (int64, error)
}

type adminRepoImpl struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepoImpl{db: db}
}

func (r *adminRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Admin{}).Count(&count).Error
	return count, err
}

func (r *adminRepoImpl) FindActiveByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.WithContext(ctx).
		Where("email = ? AND is_active = ?", email, true).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepoImpl) FindByID(ctx context.Context, id uint) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepoImpl) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Admin{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *adminRepoImpl) Create(ctx context.Context, admin *model.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepoImpl) CreateFirst(ctx context.Context, admin *model.Admin) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lock := model.BootstrapLock{ID: model.BootstrapLockID}
		if err := tx.Create(&lock).Error; err != nil {
			return apperr.Conflictf("an admin account already exists")
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		return tx.Model(&model.BootstrapLock{}).
			Where("id = ?", model.BootstrapLockID).
			Update("admin_id", admin.ID).Error
	})
}

func (r *adminRepoImpl) List(ctx context.Context, page, limit int) ([]model.Admin, int64, error) {
	var admins []model.Admin
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Admin{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at ASC").Offset(offset).Limit(limit).Find(&admins).Error
	return admins, total, err
}

func (r *adminRepoImpl) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Admin{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

func (r *adminRepoImpl) Deactivate(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&model.Admin{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *adminRepoImpl) CountActiveByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Admin{}).
		Where("role = ? AND is_active = ?", role, true).
		Count(&count).Error
	return count, err
}

func (r *adminRepoImpl) HardDeleteByEmail(ctx context.Context, email string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.Admin{})
	return result.RowsAffected, result.Error
}
