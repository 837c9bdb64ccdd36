package services

import (
	"context"
	"testing"
	"time"

	"evently.app/models"
	"evently.app/repositories"
)

func TestSweepMovesFinishedEvents(t *testing.T) {
	db := setupTestDB(t)
	publishTestEvent(t, db, 1, "Past Event", "2020-01-01", "12:00")
	publishTestEvent(t, db, 2, "Future Event", "2099-01-01", "12:00")
	svc := &HistoryService{
		publishedRepo: repositories.NewPublishedEventRepository(),
		historyRepo:   repositories.NewEventHistoryRepository(),
		retention:     48 * time.Hour,
		interval:      time.Minute,
		db:            db,
	}
	ctx := context.Background()
	now := time.Now()

	report, err := svc.SweepOnce(ctx, now)
	if err != nil {
		t.Fatalf("SweepOnce hata verdi: %v", err)
	}
	if report.MovedToHistory != 1 {
		t.Errorf("MovedToHistory %d, 1 bekleniyordu", report.MovedToHistory)
	}

	var publishedCount int64
	db.Model(&models.PublishedEvent{}).Count(&publishedCount)
	if publishedCount != 1 {
		t.Errorf("yayın kümesinde %d kayıt kaldı, 1 bekleniyordu", publishedCount)
	}

	var entry models.EventHistory
	if err := db.Where("event_id = ?", 1).First(&entry).Error; err != nil {
		t.Fatalf("geçmiş kaydı bulunamadı: %v", err)
	}
	if entry.Name != "Past Event" {
		t.Errorf("geçmiş kaydı adı %q", entry.Name)
	}
	if entry.FinishedAt.IsZero() {
		t.Error("FinishedAt doldurulmalıydı")
	}
}

func TestSweepSkipsEventsWithoutDateOrTime(t *testing.T) {
	db := setupTestDB(t)
	publishTestEvent(t, db, 1, "No Time", "2020-01-01", "")
	publishTestEvent(t, db, 2, "No Date", "", "12:00")
	publishTestEvent(t, db, 3, "Bad Date", "not-a-date", "12:00")
	svc := &HistoryService{
		publishedRepo: repositories.NewPublishedEventRepository(),
		historyRepo:   repositories.NewEventHistoryRepository(),
		retention:     48 * time.Hour,
		interval:      time.Minute,
		db:            db,
	}

	report, err := svc.SweepOnce(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("SweepOnce hata verdi: %v", err)
	}
	if report.MovedToHistory != 0 {
		t.Errorf("tarih/saat çözülemeyen etkinlikler süpürülmemeli, taşınan: %d", report.MovedToHistory)
	}

	var publishedCount int64
	db.Model(&models.PublishedEvent{}).Count(&publishedCount)
	if publishedCount != 3 {
		t.Errorf("yayın kümesi değişmemeliydi, kalan: %d", publishedCount)
	}
}

func TestSweepIdempotent(t *testing.T) {
	db := setupTestDB(t)
	publishTestEvent(t, db, 1, "Past Event", "2020-01-01", "12:00")
	svc := &HistoryService{
		publishedRepo: repositories.NewPublishedEventRepository(),
		historyRepo:   repositories.NewEventHistoryRepository(),
		retention:     48 * time.Hour,
		interval:      time.Minute,
		db:            db,
	}
	ctx := context.Background()
	now := time.Now()

	if _, err := svc.SweepOnce(ctx, now); err != nil {
		t.Fatalf("ilk süpürme hata verdi: %v", err)
	}
	report, err := svc.SweepOnce(ctx, now)
	if err != nil {
		t.Fatalf("ikinci süpürme hata verdi: %v", err)
	}
	if report.MovedToHistory != 0 || report.PurgedEntries != 0 {
		t.Errorf("ikinci süpürme hiçbir şey değiştirmemeli: %+v", report)
	}

	var historyCount int64
	db.Model(&models.EventHistory{}).Count(&historyCount)
	if historyCount != 1 {
		t.Errorf("geçmişte %d kayıt var, 1 bekleniyordu", historyCount)
	}
}

func TestSweepPurgesExpiredHistory(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()

	old := models.EventHistory{EventID: 1, Name: "Old", FinishedAt: now.Add(-49 * time.Hour)}
	recent := models.EventHistory{EventID: 2, Name: "Recent", FinishedAt: now.Add(-47 * time.Hour)}
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("geçmiş kaydı oluşturulamadı: %v", err)
	}
	if err := db.Create(&recent).Error; err != nil {
		t.Fatalf("geçmiş kaydı oluşturulamadı: %v", err)
	}

	svc := &HistoryService{
		publishedRepo: repositories.NewPublishedEventRepository(),
		historyRepo:   repositories.NewEventHistoryRepository(),
		retention:     48 * time.Hour,
		interval:      time.Minute,
		db:            db,
	}
	report, err := svc.SweepOnce(context.Background(), now)
	if err != nil {
		t.Fatalf("SweepOnce hata verdi: %v", err)
	}
	if report.PurgedEntries != 1 {
		t.Errorf("PurgedEntries %d, 1 bekleniyordu", report.PurgedEntries)
	}

	var names []string
	db.Model(&models.EventHistory{}).Pluck("name", &names)
	if len(names) != 1 || names[0] != "Recent" {
		t.Errorf("sadece saklama penceresi içindeki kayıt kalmalıydı, kalanlar: %v", names)
	}
}

func TestClearHistory(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Create(&models.EventHistory{EventID: 1, Name: "Done", FinishedAt: time.Now()}).Error; err != nil {
		t.Fatalf("geçmiş kaydı oluşturulamadı: %v", err)
	}
	svc := NewHistoryService()

	if err := svc.ClearHistory(context.Background()); err != nil {
		t.Fatalf("ClearHistory hata verdi: %v", err)
	}
	var count int64
	db.Model(&models.EventHistory{}).Count(&count)
	if count != 0 {
		t.Errorf("geçmiş temizlenmeliydi, kalan: %d", count)
	}
}
