package repositories

import (
	"context"
	"errors"
	"time"

	"evently.app/configs"
	"evently.app/configs/configslog"
	"evently.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IVerificationCodeRepository doğrulama kodu cache işlemleri için arayüz.
type IVerificationCodeRepository interface {
	Upsert(ctx context.Context, code *models.VerificationCode) error
	FindByEmail(ctx context.Context, email string) (*models.VerificationCode, error)
	IncrementAttempts(ctx context.Context, id uint) error
	DeleteByEmail(ctx context.Context, email string) error
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// VerificationCodeRepository IVerificationCodeRepository arayüzünü uygular.
type VerificationCodeRepository struct {
	db *gorm.DB
}

// NewVerificationCodeRepository yeni bir VerificationCodeRepository örneği oluşturur.
func NewVerificationCodeRepository() IVerificationCodeRepository {
	return &VerificationCodeRepository{db: configs.GetDB()}
}

// NewVerificationCodeRepositoryTx transaction'a bağlı repository oluşturur.
func NewVerificationCodeRepositoryTx(tx *gorm.DB) IVerificationCodeRepository {
	return &VerificationCodeRepository{db: tx}
}

func (r *VerificationCodeRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Upsert e-posta başına tek kod tutar: yeni kod istenince eskisi ezilir,
// deneme sayacı sıfırlanır.
func (r *VerificationCodeRepository) Upsert(ctx context.Context, code *models.VerificationCode) error {
	if code == nil || code.Email == "" || code.Code == "" {
		return errors.New("geçersiz doğrulama kodu verisi")
	}
	db := r.getDB(ctx)
	return db.Where(models.VerificationCode{Email: code.Email}).
		Assign(map[string]interface{}{
			"code":       code.Code,
			"attempts":   0,
			"expires_at": code.ExpiresAt,
		}).FirstOrCreate(code).Error
}

func (r *VerificationCodeRepository) FindByEmail(ctx context.Context, email string) (*models.VerificationCode, error) {
	if email == "" {
		return nil, errors.New("geçersiz e-posta")
	}
	var code models.VerificationCode
	err := r.getDB(ctx).Where("email = ?", email).First(&code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("VerificationCodeRepository.FindByEmail: DB error", zap.Error(err))
		return nil, err
	}
	return &code, nil
}

func (r *VerificationCodeRepository) IncrementAttempts(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("geçersiz ID")
	}
	return r.getDB(ctx).Model(&models.VerificationCode{}).Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + 1")).Error
}

// DeleteByEmail kodu kalıcı siler (tek kullanımlık: başarılı doğrulama sonrası).
func (r *VerificationCodeRepository) DeleteByEmail(ctx context.Context, email string) error {
	if email == "" {
		return errors.New("geçersiz e-posta")
	}
	return r.getDB(ctx).Unscoped().Where("email = ?", email).Delete(&models.VerificationCode{}).Error
}

// DeleteExpiredBefore süresi geçmiş kodları temizler; kod gönderimi sırasında
// fırsatçı olarak çağrılır.
func (r *VerificationCodeRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.getDB(ctx).Unscoped().Where("expires_at < ?", cutoff).Delete(&models.VerificationCode{})
	if result.Error != nil {
		configslog.Log.Error("VerificationCodeRepository.DeleteExpiredBefore: DB error", zap.Error(result.Error))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

var _ IVerificationCodeRepository = (*VerificationCodeRepository)(nil)
