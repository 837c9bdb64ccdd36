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

// IEventHistoryRepository geçmiş kayıtları için arayüz.
type IEventHistoryRepository interface {
	Create(ctx context.Context, entry *models.EventHistory) error
	FindAll(ctx context.Context) ([]models.EventHistory, error)
	ExistsByEventID(ctx context.Context, eventID uint) (bool, error)
	DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteAll(ctx context.Context) error
}

// EventHistoryRepository IEventHistoryRepository arayüzünü uygular.
type EventHistoryRepository struct {
	db *gorm.DB
}

// NewEventHistoryRepository yeni bir EventHistoryRepository örneği oluşturur.
func NewEventHistoryRepository() IEventHistoryRepository {
	return &EventHistoryRepository{db: configs.GetDB()}
}

// NewEventHistoryRepositoryTx transaction'a bağlı repository oluşturur.
func NewEventHistoryRepositoryTx(tx *gorm.DB) IEventHistoryRepository {
	return &EventHistoryRepository{db: tx}
}

func (r *EventHistoryRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *EventHistoryRepository) Create(ctx context.Context, entry *models.EventHistory) error {
	if entry == nil || entry.EventID == 0 {
		return errors.New("geçersiz geçmiş kaydı")
	}
	return r.getDB(ctx).Create(entry).Error
}

func (r *EventHistoryRepository) FindAll(ctx context.Context) ([]models.EventHistory, error) {
	var entries []models.EventHistory
	err := r.getDB(ctx).Order("finished_at desc").Find(&entries).Error
	if err != nil {
		configslog.Log.Error("EventHistoryRepository.FindAll: DB error", zap.Error(err))
	}
	return entries, err
}

func (r *EventHistoryRepository) ExistsByEventID(ctx context.Context, eventID uint) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.EventHistory{}).Where("event_id = ?", eventID).Count(&count).Error
	return count > 0, err
}

// DeleteFinishedBefore saklama penceresi dışına düşen kayıtları kalıcı siler.
func (r *EventHistoryRepository) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.getDB(ctx).Unscoped().Where("finished_at < ?", cutoff).Delete(&models.EventHistory{})
	if result.Error != nil {
		configslog.Log.Error("EventHistoryRepository.DeleteFinishedBefore: DB error", zap.Error(result.Error))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteAll tüm geçmişi temizler (dashboard'daki "geçmişi temizle" işlemi).
func (r *EventHistoryRepository) DeleteAll(ctx context.Context) error {
	return r.getDB(ctx).Unscoped().Where("1 = 1").Delete(&models.EventHistory{}).Error
}

var _ IEventHistoryRepository = (*EventHistoryRepository)(nil)
