package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"evently.app/configs"
	"evently.app/configs/configslog"
	"evently.app/models"
	"evently.app/repositories"

	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// RSVPServiceError özel servis hataları
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPEventNotFound    RSVPServiceError = "yayınlanmış etkinlik bulunamadı"
	ErrRSVPInvalidInput     RSVPServiceError = "geçersiz RSVP girdisi"
	ErrRSVPInvalidResponse  RSVPServiceError = "yanıt 'Yes' veya 'No' olmalı"
	ErrRSVPSubmitFailed     RSVPServiceError = "RSVP kaydedilemedi"
	ErrRSVPQRCodeGeneration RSVPServiceError = "QR kod üretilemedi"
)

// qrPayload "Yes" yanıtında üretilen QR içeriğinin wire formatı.
type qrPayload struct {
	EventID  uint   `json:"eventId"`
	Email    string `json:"email"`
	Response string `json:"response"`
}

// RSVPResult SubmitRSVP'nin sonucu. QRCode sadece "Yes" yanıtında doludur
// (base64 PNG data URL).
type RSVPResult struct {
	Respondent models.Respondent `json:"respondent"`
	RSVP       [2]int            `json:"rsvp"` // [Yes, No]
	QRCode     string            `json:"qrCode,omitempty"`
}

// IRSVPService public RSVP akışı için arayüz.
type IRSVPService interface {
	GetPublishedEvent(ctx context.Context, eventID uint) (*models.PublishedEvent, error)
	SubmitRSVP(ctx context.Context, eventID uint, email string, response models.RSVPResponse) (*RSVPResult, error)
}

// RSVPService IRSVPService arayüzünü uygular.
type RSVPService struct {
	publishedRepo  repositories.IPublishedEventRepository
	respondentRepo repositories.IRespondentRepository
	db             *gorm.DB
}

// NewRSVPService yeni bir RSVPService örneği oluşturur.
func NewRSVPService() IRSVPService {
	return &RSVPService{
		publishedRepo:  repositories.NewPublishedEventRepository(),
		respondentRepo: repositories.NewRespondentRepository(),
		db:             configs.GetDB(),
	}
}

// GetPublishedEvent paylaşım linkindeki ID ile yayınlanmış etkinliği getirir.
// Bulunamaması beklenen bir durumdur (link yayından önce paylaşılmış olabilir).
func (s *RSVPService) GetPublishedEvent(ctx context.Context, eventID uint) (*models.PublishedEvent, error) {
	published, err := s.publishedRepo.FindByEventIDWithRelations(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRSVPEventNotFound
		}
		return nil, err
	}
	return published, nil
}

// SubmitRSVP yanıtı kaydeder. Aynı e-postanın ikinci gönderimi kaydın
// üzerine yazar; sayaçlar respondent tablosundan yeniden hesaplanarak
// yazılır, körlemesine increment yapılmaz. "Yes" yanıtında katılım QR kodu
// üretilir.
func (s *RSVPService) SubmitRSVP(ctx context.Context, eventID uint, email string, response models.RSVPResponse) (*RSVPResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if eventID == 0 || email == "" {
		return nil, ErrRSVPInvalidInput
	}
	if !response.Valid() {
		return nil, ErrRSVPInvalidResponse
	}

	var result RSVPResult
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)
		publishedRepoTx := repositories.NewPublishedEventRepositoryTx(tx)
		respondentRepoTx := repositories.NewRespondentRepositoryTx(tx)

		published, err := publishedRepoTx.FindByEventID(txCtx, eventID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrRSVPEventNotFound
			}
			return err
		}

		respondent := models.Respondent{
			PublishedEventID: published.ID,
			Email:            email,
			Response:         response,
		}
		if err := respondentRepoTx.Upsert(txCtx, &respondent); err != nil {
			return err
		}

		// Sayaçlar hiçbir zaman increment edilmez; kaynaktan türetilir.
		yesCount, err := respondentRepoTx.CountByResponse(txCtx, published.ID, models.RSVPYes)
		if err != nil {
			return err
		}
		noCount, err := respondentRepoTx.CountByResponse(txCtx, published.ID, models.RSVPNo)
		if err != nil {
			return err
		}
		if err := publishedRepoTx.UpdateCounts(txCtx, published.ID, int(yesCount), int(noCount)); err != nil {
			return err
		}

		result.Respondent = respondent
		result.RSVP = [2]int{int(yesCount), int(noCount)}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrRSVPEventNotFound) {
			return nil, txErr
		}
		configslog.SLog.Errorf("SubmitRSVP başarısız: event %d, e-posta %s, hata: %v", eventID, email, txErr)
		return nil, ErrRSVPSubmitFailed
	}

	// QR sadece katılacaklar için; "No" yanıtı onay ekranıyla biter.
	if response == models.RSVPYes {
		qr, err := s.generateQRCode(eventID, email, response)
		if err != nil {
			return nil, ErrRSVPQRCodeGeneration
		}
		result.QRCode = qr
	}

	configslog.SLog.Infof("RSVP kaydedildi: event %d, %s -> %s, sayaçlar [%d %d]",
		eventID, email, response, result.RSVP[0], result.RSVP[1])
	return &result, nil
}

// generateQRCode {eventId, email, response} içeriğini PNG QR'a çevirir.
func (s *RSVPService) generateQRCode(eventID uint, email string, response models.RSVPResponse) (string, error) {
	data, err := json.Marshal(qrPayload{EventID: eventID, Email: email, Response: string(response)})
	if err != nil {
		return "", err
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

var _ IRSVPService = (*RSVPService)(nil)
