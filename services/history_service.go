package services

import (
	"context"
	"time"

	"evently.app/configs"
	"evently.app/configs/configslog"
	"evently.app/models"
	"evently.app/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HistoryServiceError özel servis hataları
type HistoryServiceError string

func (e HistoryServiceError) Error() string { return string(e) }

const (
	ErrHistorySweepFailed HistoryServiceError = "geçmiş süpürme işlemi başarısız"
	ErrHistoryClearFailed HistoryServiceError = "geçmiş temizlenemedi"
)

// SweepReport tek bir süpürme geçişinin özeti.
type SweepReport struct {
	MovedToHistory int   `json:"movedToHistory"`
	PurgedEntries  int64 `json:"purgedEntries"`
}

// IHistoryService geçmiş süpürme ve listeleme işlemleri için arayüz.
type IHistoryService interface {
	SweepOnce(ctx context.Context, now time.Time) (*SweepReport, error)
	Run(ctx context.Context)
	GetHistory(ctx context.Context) ([]models.EventHistory, error)
	ClearHistory(ctx context.Context) error
}

// HistoryService IHistoryService arayüzünü uygular.
type HistoryService struct {
	publishedRepo repositories.IPublishedEventRepository
	historyRepo   repositories.IEventHistoryRepository
	retention     time.Duration
	interval      time.Duration
	db            *gorm.DB
}

// NewHistoryService yeni bir HistoryService örneği oluşturur.
func NewHistoryService() IHistoryService {
	cfg := configs.GetConfig()
	return &HistoryService{
		publishedRepo: repositories.NewPublishedEventRepository(),
		historyRepo:   repositories.NewEventHistoryRepository(),
		retention:     cfg.HistoryRetention,
		interval:      cfg.SweepInterval,
		db:            configs.GetDB(),
	}
}

// SweepOnce tek geçişte üç işi tek transaction içinde yapar:
//  1. tarihi+saati geçmiş yayınları (yayın anı parse edilebiliyorsa) geçmişe
//     taşır; tarih veya saat eksikse etkinlik daima aktif sayılır,
//  2. saklama penceresi (varsayılan 48 saat) dışındaki geçmiş kayıtlarını
//     kalıcı siler,
//  3. taşınan yayın kayıtlarını yayın kümesinden düşürür.
//
// Geçiş re-entrant'tır: EventID geçmişte zaten varsa tekrar eklenmez, bu
// yüzden art arda iki çağrı ikinci seferde hiçbir şey değiştirmez.
func (s *HistoryService) SweepOnce(ctx context.Context, now time.Time) (*SweepReport, error) {
	report := &SweepReport{}
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)
		publishedRepoTx := repositories.NewPublishedEventRepositoryTx(tx)
		historyRepoTx := repositories.NewEventHistoryRepositoryTx(tx)

		published, err := publishedRepoTx.FindAll(txCtx)
		if err != nil {
			return err
		}

		for _, p := range published {
			moment, ok := models.EventMoment(p.Date, p.Time)
			if !ok || !moment.Before(now) {
				continue // Hâlâ aktif veya süresiz aktif.
			}

			exists, err := historyRepoTx.ExistsByEventID(txCtx, p.EventID)
			if err != nil {
				return err
			}
			if !exists {
				entry := models.EventHistory{
					EventID:    p.EventID,
					Name:       p.Name,
					Location:   p.Location,
					Date:       p.Date,
					Time:       p.Time,
					Type:       p.Type,
					YesCount:   p.YesCount,
					NoCount:    p.NoCount,
					FinishedAt: now,
				}
				if err := historyRepoTx.Create(txCtx, &entry); err != nil {
					return err
				}
				report.MovedToHistory++
			}
			if err := publishedRepoTx.DeleteByEventID(txCtx, p.EventID); err != nil {
				return err
			}
		}

		purged, err := historyRepoTx.DeleteFinishedBefore(txCtx, now.Add(-s.retention))
		if err != nil {
			return err
		}
		report.PurgedEntries = purged
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("Geçmiş süpürme geçişi başarısız", zap.Error(txErr))
		return nil, ErrHistorySweepFailed
	}

	if report.MovedToHistory > 0 || report.PurgedEntries > 0 {
		configslog.SLog.Infof("Süpürme tamamlandı: %d etkinlik geçmişe taşındı, %d kayıt temizlendi",
			report.MovedToHistory, report.PurgedEntries)
	}
	return report, nil
}

// Run periyodik süpürme döngüsünü çalıştırır. Context iptal edilene kadar
// bloklar; main'den kendi goroutine'inde çağrılır ve graceful shutdown'da
// context iptaliyle durur.
func (s *HistoryService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	configslog.SLog.Infof("Geçmiş süpürme görevi başladı (periyot: %s)", s.interval)
	for {
		select {
		case <-ctx.Done():
			configslog.SLog.Info("Geçmiş süpürme görevi durduruldu.")
			return
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx, time.Now()); err != nil {
				// Hata geçişi öldürmez; bir sonraki tick yeniden dener.
				configslog.Log.Warn("Süpürme geçişi hata verdi, sonraki periyotta tekrar denenecek", zap.Error(err))
			}
		}
	}
}

// GetHistory saklama penceresindeki geçmiş kayıtlarını döndürür.
func (s *HistoryService) GetHistory(ctx context.Context) ([]models.EventHistory, error) {
	return s.historyRepo.FindAll(ctx)
}

// ClearHistory tüm geçmişi temizler.
func (s *HistoryService) ClearHistory(ctx context.Context) error {
	if err := s.historyRepo.DeleteAll(ctx); err != nil {
		return ErrHistoryClearFailed
	}
	configslog.SLog.Info("Etkinlik geçmişi temizlendi.")
	return nil
}

var _ IHistoryService = (*HistoryService)(nil)
