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

// DailyCheckInCount katılım serisinin bir günlük dilimi.
type DailyCheckInCount struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// IAttendeeRepository katılımcı ve katılım günlüğü işlemleri için arayüz.
type IAttendeeRepository interface {
	FindByEventAndEmail(ctx context.Context, publishedEventID uint, email string) (*models.Attendee, error)
	FindByEventID(ctx context.Context, publishedEventID uint) ([]models.Attendee, error)
	Create(ctx context.Context, attendee *models.Attendee) error
	CountByEventID(ctx context.Context, publishedEventID uint) (int64, error)

	CreateCheckIn(ctx context.Context, checkIn *models.CheckIn) error
	CountCheckIns(ctx context.Context, publishedEventID uint) (int64, error)
	DailyCheckInCounts(ctx context.Context, publishedEventID uint) ([]DailyCheckInCount, error)
}

// AttendeeRepository IAttendeeRepository arayüzünü uygular.
type AttendeeRepository struct {
	db *gorm.DB
}

// NewAttendeeRepository yeni bir AttendeeRepository örneği oluşturur.
func NewAttendeeRepository() IAttendeeRepository {
	return &AttendeeRepository{db: configs.GetDB()}
}

// NewAttendeeRepositoryTx transaction'a bağlı repository oluşturur.
func NewAttendeeRepositoryTx(tx *gorm.DB) IAttendeeRepository {
	return &AttendeeRepository{db: tx}
}

func (r *AttendeeRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *AttendeeRepository) FindByEventAndEmail(ctx context.Context, publishedEventID uint, email string) (*models.Attendee, error) {
	if publishedEventID == 0 || email == "" {
		return nil, errors.New("geçersiz parametre")
	}
	var attendee models.Attendee
	err := r.getDB(ctx).Where("published_event_id = ? AND email = ?", publishedEventID, email).First(&attendee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AttendeeRepository.FindByEventAndEmail: DB error", zap.Error(err))
		return nil, err
	}
	return &attendee, nil
}

func (r *AttendeeRepository) FindByEventID(ctx context.Context, publishedEventID uint) ([]models.Attendee, error) {
	if publishedEventID == 0 {
		return nil, errors.New("geçersiz ID")
	}
	var attendees []models.Attendee
	err := r.getDB(ctx).Where("published_event_id = ?", publishedEventID).
		Order("created_at asc").Find(&attendees).Error
	if err != nil {
		configslog.Log.Error("AttendeeRepository.FindByEventID: DB error", zap.Uint("published_event_id", publishedEventID), zap.Error(err))
	}
	return attendees, err
}

func (r *AttendeeRepository) Create(ctx context.Context, attendee *models.Attendee) error {
	if attendee == nil || attendee.PublishedEventID == 0 || attendee.Email == "" {
		return errors.New("geçersiz attendee verisi")
	}
	return r.getDB(ctx).Create(attendee).Error
}

func (r *AttendeeRepository) CountByEventID(ctx context.Context, publishedEventID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Attendee{}).
		Where("published_event_id = ?", publishedEventID).Count(&count).Error
	return count, err
}

func (r *AttendeeRepository) CreateCheckIn(ctx context.Context, checkIn *models.CheckIn) error {
	if checkIn == nil || checkIn.PublishedEventID == 0 || checkIn.Email == "" {
		return errors.New("geçersiz check-in verisi")
	}
	if checkIn.ScannedAt.IsZero() {
		checkIn.ScannedAt = time.Now().UTC()
	}
	return r.getDB(ctx).Create(checkIn).Error
}

func (r *AttendeeRepository) CountCheckIns(ctx context.Context, publishedEventID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.CheckIn{}).
		Where("published_event_id = ?", publishedEventID).Count(&count).Error
	return count, err
}

// DailyCheckInCounts katılım günlüğünü gün bazında toplar; "katılım serisi"
// buradan türetilir. Gün sıralaması kronolojiktir.
func (r *AttendeeRepository) DailyCheckInCounts(ctx context.Context, publishedEventID uint) ([]DailyCheckInCount, error) {
	if publishedEventID == 0 {
		return nil, errors.New("geçersiz ID")
	}
	var checkIns []models.CheckIn
	err := r.getDB(ctx).Where("published_event_id = ?", publishedEventID).
		Order("scanned_at asc").Find(&checkIns).Error
	if err != nil {
		configslog.Log.Error("AttendeeRepository.DailyCheckInCounts: DB error", zap.Uint("published_event_id", publishedEventID), zap.Error(err))
		return nil, err
	}

	// Gün bazında toplama uygulama tarafında yapılır; tarih fonksiyonları
	// sqlite/postgres arasında ayrıştığı için SQL'e gömülmez.
	var series []DailyCheckInCount
	index := map[string]int{}
	for _, c := range checkIns {
		day := c.ScannedAt.UTC().Format("2006-01-02")
		if i, ok := index[day]; ok {
			series[i].Count++
			continue
		}
		index[day] = len(series)
		series = append(series, DailyCheckInCount{Day: day, Count: 1})
	}
	return series, nil
}

var _ IAttendeeRepository = (*AttendeeRepository)(nil)
