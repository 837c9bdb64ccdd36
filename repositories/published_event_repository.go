package repositories

import (
	"context"
	"errors"

	"evently.app/configs"
	"evently.app/configs/configslog"
	"evently.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IPublishedEventRepository yayınlanmış etkinlik veritabanı işlemleri için arayüz.
type IPublishedEventRepository interface {
	Create(ctx context.Context, published *models.PublishedEvent) error
	FindByEventID(ctx context.Context, eventID uint) (*models.PublishedEvent, error)
	FindByEventIDWithRelations(ctx context.Context, eventID uint) (*models.PublishedEvent, error)
	FindAll(ctx context.Context) ([]models.PublishedEvent, error)
	FindAllWithRelations(ctx context.Context) ([]models.PublishedEvent, error)
	ExistsByEventID(ctx context.Context, eventID uint) (bool, error)
	UpdateCounts(ctx context.Context, id uint, yesCount, noCount int) error
	DeleteByEventID(ctx context.Context, eventID uint) error
}

// PublishedEventRepository IPublishedEventRepository arayüzünü uygular.
type PublishedEventRepository struct {
	db *gorm.DB
}

// NewPublishedEventRepository yeni bir PublishedEventRepository örneği oluşturur.
func NewPublishedEventRepository() IPublishedEventRepository {
	return &PublishedEventRepository{db: configs.GetDB()}
}

// NewPublishedEventRepositoryTx transaction'a bağlı repository oluşturur.
func NewPublishedEventRepositoryTx(tx *gorm.DB) IPublishedEventRepository {
	return &PublishedEventRepository{db: tx}
}

func (r *PublishedEventRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *PublishedEventRepository) Create(ctx context.Context, published *models.PublishedEvent) error {
	if published == nil || published.EventID == 0 {
		return errors.New("geçersiz yayınlanmış etkinlik")
	}
	return r.getDB(ctx).Create(published).Error
}

func (r *PublishedEventRepository) FindByEventID(ctx context.Context, eventID uint) (*models.PublishedEvent, error) {
	if eventID == 0 {
		return nil, errors.New("geçersiz Event ID")
	}
	var published models.PublishedEvent
	err := r.getDB(ctx).Where("event_id = ?", eventID).First(&published).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("PublishedEventRepository.FindByEventID: DB error", zap.Uint("event_id", eventID), zap.Error(err))
		return nil, err
	}
	return &published, nil
}

func (r *PublishedEventRepository) FindByEventIDWithRelations(ctx context.Context, eventID uint) (*models.PublishedEvent, error) {
	if eventID == 0 {
		return nil, errors.New("geçersiz Event ID")
	}
	var published models.PublishedEvent
	err := r.getDB(ctx).Where("event_id = ?", eventID).
		Preload("Respondents").Preload("Attendees").Preload("CheckIns").
		First(&published).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("PublishedEventRepository.FindByEventIDWithRelations: DB error", zap.Uint("event_id", eventID), zap.Error(err))
		return nil, err
	}
	return &published, nil
}

func (r *PublishedEventRepository) FindAll(ctx context.Context) ([]models.PublishedEvent, error) {
	var published []models.PublishedEvent
	err := r.getDB(ctx).Order("created_at asc").Find(&published).Error
	if err != nil {
		configslog.Log.Error("PublishedEventRepository.FindAll: DB error", zap.Error(err))
	}
	return published, err
}

func (r *PublishedEventRepository) FindAllWithRelations(ctx context.Context) ([]models.PublishedEvent, error) {
	var published []models.PublishedEvent
	err := r.getDB(ctx).Order("created_at asc").
		Preload("Respondents").Preload("Attendees").Preload("CheckIns").
		Find(&published).Error
	if err != nil {
		configslog.Log.Error("PublishedEventRepository.FindAllWithRelations: DB error", zap.Error(err))
	}
	return published, err
}

func (r *PublishedEventRepository) ExistsByEventID(ctx context.Context, eventID uint) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.PublishedEvent{}).Where("event_id = ?", eventID).Count(&count).Error
	return count > 0, err
}

// UpdateCounts RSVP sayaçlarını tek seferde yazar. Çağıran taraf yeni değerleri
// respondent kayıtlarından türetmiş olmalıdır; burada increment yapılmaz.
func (r *PublishedEventRepository) UpdateCounts(ctx context.Context, id uint, yesCount, noCount int) error {
	if id == 0 {
		return errors.New("geçersiz ID")
	}
	result := r.getDB(ctx).Model(&models.PublishedEvent{}).Where("id = ?", id).
		Updates(map[string]interface{}{"yes_count": yesCount, "no_count": noCount})
	if result.Error != nil {
		configslog.Log.Error("PublishedEventRepository.UpdateCounts: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByEventID yayınlanmış etkinliği kalıcı olarak siler (geçmişe taşınırken).
func (r *PublishedEventRepository) DeleteByEventID(ctx context.Context, eventID uint) error {
	if eventID == 0 {
		return errors.New("geçersiz Event ID")
	}
	return r.getDB(ctx).Unscoped().Where("event_id = ?", eventID).Delete(&models.PublishedEvent{}).Error
}

var _ IPublishedEventRepository = (*PublishedEventRepository)(nil)
