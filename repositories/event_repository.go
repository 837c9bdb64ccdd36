package repositories

import (
	"context"
	"errors"

	"evently.app/configs"
	"evently.app/configs/configslog"
	"evently.app/models"
	"evently.app/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IEventRepository taslak etkinlik veritabanı işlemleri için arayüz.
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindAll(ctx context.Context) ([]models.Event, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Event, int64, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, event *models.Event) error
	CountAll(ctx context.Context) (int64, error)
}

// EventRepository IEventRepository arayüzünü uygular.
type EventRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.Event]
}

// NewEventRepository yeni bir EventRepository örneği oluşturur.
func NewEventRepository() IEventRepository {
	return newEventRepository(configs.GetDB())
}

// NewEventRepositoryTx transaction'a bağlı repository oluşturur.
func NewEventRepositoryTx(tx *gorm.DB) IEventRepository {
	return newEventRepository(tx)
}

func newEventRepository(db *gorm.DB) *EventRepository {
	base := NewBaseRepository[models.Event](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name", "date", "type"})
	return &EventRepository{db: db, base: base}
}

func (r *EventRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event == nil {
		return errors.New("oluşturulacak etkinlik geçerli değil")
	}
	return r.getDB(ctx).Create(event).Error
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	return r.base.FindByID(ctx, id)
}

func (r *EventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.getDB(ctx).Order("created_at desc").Find(&events).Error
	if err != nil {
		configslog.Log.Error("EventRepository.FindAll: DB error", zap.Error(err))
	}
	return events, err
}

// FindAllPaginated etkinlikleri isim/tip filtresi ve sayfalama ile getirir.
func (r *EventRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Event, int64, error) {
	var events []models.Event
	var totalCount int64
	db := r.getDB(ctx)

	query := db.Model(&models.Event{})
	if params.Name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+params.Name+"%")
	}
	if params.Status != "" {
		query = query.Where("type = ?", params.Status)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("EventRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return events, 0, nil
	}

	err := query.Order(r.base.OrderClause(params)).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&events).Error
	if err != nil {
		configslog.Log.Error("EventRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return events, totalCount, nil
}

func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	if event == nil || event.ID == 0 {
		return errors.New("güncellenecek etkinlik geçerli değil")
	}
	return r.getDB(ctx).Save(event).Error
}

// Delete etkinliği siler (soft delete).
func (r *EventRepository) Delete(ctx context.Context, event *models.Event) error {
	if event == nil || event.ID == 0 {
		return errors.New("silinecek etkinlik geçerli değil")
	}
	result := r.getDB(ctx).Delete(event)
	if result.Error != nil {
		configslog.Log.Error("EventRepository.Delete: DB error", zap.Uint("id", event.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Event{}).Count(&count).Error
	return count, err
}

var _ IEventRepository = (*EventRepository)(nil)
