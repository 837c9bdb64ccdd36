package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"evently.app/configs"
	"evently.app/configs/configslog"
	"evently.app/models"
	"evently.app/pkg/queryparams"
	"evently.app/repositories"
	"evently.app/utils"

	"gorm.io/gorm"
)

// EventServiceError özel servis hataları
type EventServiceError string

func (e EventServiceError) Error() string { return string(e) }

const (
	ErrEventNotFound          EventServiceError = "etkinlik bulunamadı"
	ErrEventCreationFailed    EventServiceError = "etkinlik oluşturulamadı"
	ErrEventUpdateFailed      EventServiceError = "etkinlik güncellenemedi"
	ErrEventDeletionFailed    EventServiceError = "etkinlik silinemedi"
	ErrEventInvalidInput      EventServiceError = "geçersiz girdi verisi"
	ErrEventNameRequired      EventServiceError = "etkinlik adı zorunludur"
	ErrEventLocationRequired  EventServiceError = "etkinlik yeri zorunludur"
	ErrEventTypeRequired      EventServiceError = "etkinlik türü zorunludur"
	ErrEventPublishFailed     EventServiceError = "etkinlik yayınlanamadı"
	ErrEventPhotoUploadFailed EventServiceError = "fotoğraf kaydedilemedi"
)

// IEventService taslak etkinlik işlemleri için arayüz.
type IEventService interface {
	CreateEvent(ctx context.Context, event models.Event, photo *multipart.FileHeader) (*models.Event, error)
	GetEventByID(ctx context.Context, id uint) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]models.Event, error)
	GetEventsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateEvent(ctx context.Context, id uint, updated models.Event, photo *multipart.FileHeader) (*models.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	PublishEvent(ctx context.Context, id uint) (*models.PublishedEvent, error)
}

// EventService IEventService arayüzünü uygular.
type EventService struct {
	repo          repositories.IEventRepository
	publishedRepo repositories.IPublishedEventRepository
	db            *gorm.DB
}

// NewEventService yeni bir EventService örneği oluşturur.
func NewEventService() IEventService {
	return &EventService{
		repo:          repositories.NewEventRepository(),
		publishedRepo: repositories.NewPublishedEventRepository(),
		db:            configs.GetDB(),
	}
}

// ValidateEvent temel validasyonları yapar.
func ValidateEvent(event models.Event) error {
	if strings.TrimSpace(event.Name) == "" {
		return ErrEventNameRequired
	}
	if strings.TrimSpace(event.Location) == "" {
		return ErrEventLocationRequired
	}
	if strings.TrimSpace(event.Type) == "" {
		return ErrEventTypeRequired
	}
	if event.Visibility != models.VisibilityPublic && event.Visibility != models.VisibilityPrivate {
		return fmt.Errorf("%w: visibility 'public' veya 'private' olmalı", ErrEventInvalidInput)
	}
	if event.Capacity < 0 {
		return fmt.Errorf("%w: kapasite negatif olamaz", ErrEventInvalidInput)
	}
	return nil
}

// CreateEvent yeni bir taslak etkinlik oluşturur; fotoğraf varsa kaydeder.
func (s *EventService) CreateEvent(ctx context.Context, event models.Event, photo *multipart.FileHeader) (*models.Event, error) {
	if event.Visibility == "" {
		event.Visibility = models.VisibilityPublic
	}
	if err := ValidateEvent(event); err != nil {
		return nil, err
	}

	if photo != nil {
		filename, err := utils.SaveUploadedPhoto(photo)
		if err != nil {
			if errors.Is(err, utils.ErrUnsupportedPhotoType) {
				return nil, fmt.Errorf("%w: %v", ErrEventInvalidInput, err)
			}
			return nil, ErrEventPhotoUploadFailed
		}
		event.Photo = filename
	}

	if err := s.repo.Create(ctx, &event); err != nil {
		utils.DeletePhoto(event.Photo)
		return nil, ErrEventCreationFailed
	}

	configslog.SLog.Infof("Etkinlik oluşturuldu: ID %d, Ad: %s", event.ID, event.Name)
	return &event, nil
}

// GetEventByID belirli bir taslağı getirir.
func (s *EventService) GetEventByID(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// GetAllEvents tüm taslakları getirir (frontend'in klasik GET /events çağrısı).
func (s *EventService) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	return s.repo.FindAll(ctx)
}

// GetEventsPaginated taslakları filtre + sayfalama ile getirir.
func (s *EventService) GetEventsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Normalize()
	events, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(events, params, totalCount), nil
}

// UpdateEvent taslağı yerinde günceller. Yeni fotoğraf geldiyse eskisi silinir
// (orijinal API davranışı).
func (s *EventService) UpdateEvent(ctx context.Context, id uint, updated models.Event, photo *multipart.FileHeader) (*models.Event, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updated.Visibility == "" {
		updated.Visibility = event.Visibility
	}

	event.Name = updated.Name
	event.Location = updated.Location
	event.Date = updated.Date
	event.Time = updated.Time
	event.Duration = updated.Duration
	event.Capacity = updated.Capacity
	event.Type = updated.Type
	event.Visibility = updated.Visibility
	event.Description = updated.Description
	event.Organizer = updated.Organizer

	if err := ValidateEvent(*event); err != nil {
		return nil, err
	}

	if photo != nil {
		filename, err := utils.SaveUploadedPhoto(photo)
		if err != nil {
			if errors.Is(err, utils.ErrUnsupportedPhotoType) {
				return nil, fmt.Errorf("%w: %v", ErrEventInvalidInput, err)
			}
			return nil, ErrEventPhotoUploadFailed
		}
		oldPhoto := event.Photo
		event.Photo = filename
		defer utils.DeletePhoto(oldPhoto)
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, ErrEventUpdateFailed
	}
	return event, nil
}

// DeleteEvent taslağı ve varsa fotoğrafını siler.
func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, event); err != nil {
		return ErrEventDeletionFailed
	}
	utils.DeletePhoto(event.Photo)
	configslog.SLog.Infof("Etkinlik silindi: ID %d", id)
	return nil
}

// PublishEvent taslağı yayınlar: anlık kopya + deterministik paylaşım linki +
// sıfır RSVP sayaçları. Aynı taslağın yeniden yayınlanması no-op'tur; mevcut
// respondent/sayaç verisine dokunulmaz.
func (s *EventService) PublishEvent(ctx context.Context, id uint) (*models.PublishedEvent, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var published *models.PublishedEvent
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)
		publishedRepoTx := repositories.NewPublishedEventRepositoryTx(tx)

		existing, err := publishedRepoTx.FindByEventID(txCtx, event.ID)
		if err == nil {
			published = existing // Zaten yayında: mevcut kaydı döndür, sıfırlama yok.
			return nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		cfg := configs.GetConfig()
		published = &models.PublishedEvent{
			EventID:     event.ID,
			Name:        event.Name,
			Location:    event.Location,
			Date:        event.Date,
			Time:        event.Time,
			Duration:    event.Duration,
			Capacity:    event.Capacity,
			Type:        event.Type,
			Visibility:  event.Visibility,
			Description: event.Description,
			Photo:       event.Photo,
			Organizer:   event.Organizer,
			ShareLink:   fmt.Sprintf("%s/rsvp/%d", strings.TrimRight(cfg.BaseURL, "/"), event.ID),
			YesCount:    0,
			NoCount:     0,
		}
		return publishedRepoTx.Create(txCtx, published)
	})
	if txErr != nil {
		configslog.SLog.Errorf("Etkinlik yayınlanamadı: ID %d, hata: %v", id, txErr)
		return nil, ErrEventPublishFailed
	}

	configslog.SLog.Infof("Etkinlik yayında: ID %d, Link: %s", event.ID, published.ShareLink)
	return published, nil
}

var _ IEventService = (*EventService)(nil)
