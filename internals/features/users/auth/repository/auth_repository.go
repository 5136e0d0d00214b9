// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "dakwahku_backend/internals/features/users/auth/model"
	preacherModel "dakwahku_backend/internals/features/users/preacher/model"
)

/* ====================== PREACHER (profil login) ====================== */

func FindPreacherByGoogleID(db *gorm.DB, googleID string) (*preacherModel.PreacherModel, error) {
	var p preacherModel.PreacherModel
	if err := db.Where("google_id = ?", googleID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func FindPreacherByEmail(db *gorm.DB, email string) (*preacherModel.PreacherModel, error) {
	var p preacherModel.PreacherModel
	if err := db.Where("email = ?", email).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func FindPreacherByID(db *gorm.DB, id uuid.UUID) (*preacherModel.PreacherModel, error) {
	var p preacherModel.PreacherModel
	if err := db.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func CreatePreacher(db *gorm.DB, p *preacherModel.PreacherModel) error {
	return db.Create(p).Error
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(db *gorm.DB, rt *authModel.RefreshTokenModel) error {
	return db.Create(rt).Error
}

func FindRefreshTokenByHash(db *gorm.DB, hash []byte) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.Where("token_hash = ? AND revoked_at IS NULL", hash).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func DeleteRefreshTokenByHash(db *gorm.DB, hash []byte) error {
	return db.Where("token_hash = ?", hash).Delete(&authModel.RefreshTokenModel{}).Error
}

/* ====================== BLACKLIST TOKEN ====================== */

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}

func CleanupExpiredBlacklist(db *gorm.DB) (int64, error) {
	res := db.Exec(`DELETE FROM token_blacklist WHERE expired_at <= ?`, time.Now().UTC())
	return res.RowsAffected, res.Error
}
