package services

import (
	"context"
	"errors"
	"testing"

	"evently.app/models"
)

func TestProcessScanMarksAttendance(t *testing.T) {
	db := setupTestDB(t)
	publishTestEvent(t, db, 1001, "Launch Night", "2030-05-01", "19:00")
	svc := NewCheckInService()
	ctx := context.Background()

	payload := `{"eventId":1001,"email":"a@x.com","response":"Yes"}`
	result, err := svc.ProcessScan(ctx, payload)
	if err != nil {
		t.Fatalf("ProcessScan hata verdi: %v", err)
	}
	if result.Kind != models.QRPayloadAttendance {
		t.Fatalf("Kind %q, attendance bekleniyordu", result.Kind)
	}
	if !result.EventFound || !result.AttendanceMarked || result.AlreadyPresent {
		t.Errorf("ilk taramada EventFound+AttendanceMarked bekleniyordu: %+v", result)
	}
	if result.TotalCheckIns != 1 {
		t.Errorf("TotalCheckIns %d, 1 bekleniyordu", result.TotalCheckIns)
	}

	var attendee models.Attendee
	if err := db.Where("email = ?", "a@x.com").First(&attendee).Error; err != nil {
		t.Fatalf("attendee kaydı bulunamadı: %v", err)
	}
	if attendee.Status != models.AttendeePresent {
		t.Errorf("attendee durumu %q, Present bekleniyordu", attendee.Status)
	}
	if attendee.Name != "a" {
		t.Errorf("isim e-postanın yerel kısmından türetilmeli, alınan: %q", attendee.Name)
	}
}

func TestProcessScanIdempotent(t *testing.T) {
	db := setupTestDB(t)
	publishTestEvent(t, db, 12, "Meetup", "2030-03-03", "18:30")
	svc := NewCheckInService()
	ctx := context.Background()

	payload := `{"eventId":12,"email":"guest@x.com","response":"Yes"}`
	if _, err := svc.ProcessScan(ctx, payload); err != nil {
		t.Fatalf("ilk tarama hata verdi: %v", err)
	}
	result, err := svc.ProcessScan(ctx, payload)
	if err != nil {
		t.Fatalf("ikinci tarama hata verdi: %v", err)
	}
	if !result.AlreadyPresent || result.AttendanceMarked {
		t.Errorf("ikinci tarama AlreadyPresent olmalı, mutasyon olmamalı: %+v", result)
	}
	if result.TotalCheckIns != 1 {
		t.Errorf("ikinci tarama sayacı artırmamalı, TotalCheckIns: %d", result.TotalCheckIns)
	}

	var count int64
	db.Model(&models.Attendee{}).Count(&count)
	if count != 1 {
		t.Errorf("attendee sayısı %d, 1 bekleniyordu", count)
	}
}

func TestProcessScanMarksRegardlessOfResponseValue(t *testing.T) {
	db := setupTestDB(t)
	publishTestEvent(t, db, 8, "Seminar", "2030-04-04", "09:00")
	svc := NewCheckInService()

	// "No" yanıtlı QR bile kapıda okutulursa katılım sayılır; belirleyici
	// olan eventId+email varlığıdır.
	result, err := svc.ProcessScan(context.Background(), `{"eventId":8,"email":"b@x.com","response":"No"}`)
	if err != nil {
		t.Fatalf("ProcessScan hata verdi: %v", err)
	}
	if !result.AttendanceMarked {
		t.Error("response değerinden bağımsız olarak katılım işaretlenmeliydi")
	}
}

func TestProcessScanLegacyPayloadIsReadOnly(t *testing.T) {
	db := setupTestDB(t)
	publishTestEvent(t, db, 9, "Party", "2030-07-07", "21:00")
	svc := NewCheckInService()

	result, err := svc.ProcessScan(context.Background(), `{"name":"Ali","email":"ali@x.com","rsvp":"Yes"}`)
	if err != nil {
		t.Fatalf("ProcessScan hata verdi: %v", err)
	}
	if result.Kind != models.QRPayloadLegacy {
		t.Fatalf("Kind %q, legacy bekleniyordu", result.Kind)
	}
	if result.Name != "Ali" || result.Email != "ali@x.com" || result.RSVP != "Yes" {
		t.Errorf("eski biçim alanları taşınmalı: %+v", result)
	}
	if result.AttendanceMarked {
		t.Error("eski biçim hiçbir mutasyona yol açmamalı")
	}

	var count int64
	db.Model(&models.Attendee{}).Count(&count)
	if count != 0 {
		t.Errorf("eski biçim attendee oluşturmamalı, sayı: %d", count)
	}
}

func TestProcessScanRawText(t *testing.T) {
	setupTestDB(t)
	svc := NewCheckInService()

	result, err := svc.ProcessScan(context.Background(), "https://example.com/unrelated")
	if err != nil {
		t.Fatalf("ProcessScan hata verdi: %v", err)
	}
	if result.Kind != models.QRPayloadRaw {
		t.Errorf("Kind %q, raw bekleniyordu", result.Kind)
	}
	if result.Raw != "https://example.com/unrelated" {
		t.Errorf("Raw içerik olduğu gibi dönmeli, alınan: %q", result.Raw)
	}
}

func TestProcessScanUnknownEvent(t *testing.T) {
	setupTestDB(t)
	svc := NewCheckInService()

	result, err := svc.ProcessScan(context.Background(), `{"eventId":404,"email":"x@x.com","response":"Yes"}`)
	if err != nil {
		t.Fatalf("yayın dışı etkinlik hata üretmemeli: %v", err)
	}
	if result.EventFound || result.AttendanceMarked {
		t.Errorf("yayın dışı etkinlikte işaretleme olmamalı: %+v", result)
	}
}

func TestProcessScanEmptyPayload(t *testing.T) {
	setupTestDB(t)
	svc := NewCheckInService()

	if _, err := svc.ProcessScan(context.Background(), "   "); !errors.Is(err, ErrCheckInEmptyPayload) {
		t.Errorf("ErrCheckInEmptyPayload bekleniyordu, alınan: %v", err)
	}
}
