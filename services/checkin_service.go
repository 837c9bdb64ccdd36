package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"evently.app/configs"
	"evently.app/configs/configslog"
	"evently.app/models"
	"evently.app/repositories"

	"gorm.io/gorm"
)

// CheckInServiceError özel servis hataları
type CheckInServiceError string

func (e CheckInServiceError) Error() string { return string(e) }

const (
	ErrCheckInEmptyPayload CheckInServiceError = "taranan içerik boş"
	ErrCheckInFailed       CheckInServiceError = "katılım işaretlenemedi"
)

// ScanResult bir QR taramasının işlenmiş sonucu.
// Kind'a göre frontend ya katılım onayı ya da salt görüntüleme yapar.
type ScanResult struct {
	Kind             models.QRPayloadKind `json:"kind"`
	EventID          uint                 `json:"eventId,omitempty"`
	Email            string               `json:"email,omitempty"`
	Response         string               `json:"response,omitempty"`
	Name             string               `json:"name,omitempty"`
	RSVP             string               `json:"rsvp,omitempty"`
	Raw              string               `json:"raw,omitempty"`
	AttendanceMarked bool                 `json:"attendanceMarked"`
	AlreadyPresent   bool                 `json:"alreadyPresent"`
	EventFound       bool                 `json:"eventFound"`
	TotalCheckIns    int64                `json:"totalCheckIns,omitempty"`
}

// ICheckInService QR tarama / katılım işaretleme için arayüz.
type ICheckInService interface {
	ProcessScan(ctx context.Context, payload string) (*ScanResult, error)
}

// CheckInService ICheckInService arayüzünü uygular.
type CheckInService struct {
	publishedRepo repositories.IPublishedEventRepository
	attendeeRepo  repositories.IAttendeeRepository
	db            *gorm.DB
}

// NewCheckInService yeni bir CheckInService örneği oluşturur.
func NewCheckInService() ICheckInService {
	return &CheckInService{
		publishedRepo: repositories.NewPublishedEventRepository(),
		attendeeRepo:  repositories.NewAttendeeRepository(),
		db:            configs.GetDB(),
	}
}

// ProcessScan taranan metni çözer ve katılım biçimiyse işaretler.
//
// Katılım işaretleme payload'daki eventId+email varlığına bakar; response
// değerinin "Yes" ya da "No" olması önemsizdir. İşaretleme idempotenttir:
// aynı kodun ikinci okutulması katılımcı listesini de sayacı da değiştirmez.
// Eski biçim ({name, email, rsvp}) ve JSON olmayan içerik hiçbir mutasyona
// yol açmaz, sadece görüntülenmek üzere geri döner.
func (s *CheckInService) ProcessScan(ctx context.Context, payload string) (*ScanResult, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, ErrCheckInEmptyPayload
	}

	decoded := models.DecodeQRPayload(payload)
	result := &ScanResult{
		Kind:     decoded.Kind,
		EventID:  decoded.EventID,
		Email:    decoded.Email,
		Response: decoded.Response,
		Name:     decoded.Name,
		RSVP:     decoded.RSVP,
		Raw:      decoded.Raw,
	}

	if decoded.Kind != models.QRPayloadAttendance {
		return result, nil
	}

	email := strings.TrimSpace(strings.ToLower(decoded.Email))
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)
		publishedRepoTx := repositories.NewPublishedEventRepositoryTx(tx)
		attendeeRepoTx := repositories.NewAttendeeRepositoryTx(tx)

		published, err := publishedRepoTx.FindByEventID(txCtx, decoded.EventID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				// Etkinlik yayında değil: tarama sonucu yine gösterilir,
				// işaretlenecek bir şey yok.
				return nil
			}
			return err
		}
		result.EventFound = true

		_, err = attendeeRepoTx.FindByEventAndEmail(txCtx, published.ID, email)
		if err == nil {
			// İkinci okutma: kayıt ve sayaç olduğu gibi kalır.
			result.AlreadyPresent = true
			total, err := attendeeRepoTx.CountCheckIns(txCtx, published.ID)
			if err != nil {
				return err
			}
			result.TotalCheckIns = total
			return nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		attendee := models.Attendee{
			PublishedEventID: published.ID,
			Name:             models.NameFromEmail(email),
			Email:            email,
			Status:           models.AttendeePresent,
		}
		if err := attendeeRepoTx.Create(txCtx, &attendee); err != nil {
			return err
		}
		checkIn := models.CheckIn{
			PublishedEventID: published.ID,
			Email:            email,
			ScannedAt:        time.Now().UTC(),
		}
		if err := attendeeRepoTx.CreateCheckIn(txCtx, &checkIn); err != nil {
			return err
		}

		result.AttendanceMarked = true
		total, err := attendeeRepoTx.CountCheckIns(txCtx, published.ID)
		if err != nil {
			return err
		}
		result.TotalCheckIns = total
		return nil
	})
	if txErr != nil {
		configslog.SLog.Errorf("ProcessScan başarısız: event %d, hata: %v", decoded.EventID, txErr)
		return nil, ErrCheckInFailed
	}

	if result.AttendanceMarked {
		configslog.SLog.Infof("Katılım işaretlendi: event %d, %s (toplam %d)",
			decoded.EventID, email, result.TotalCheckIns)
	}
	return result, nil
}

var _ ICheckInService = (*CheckInService)(nil)
