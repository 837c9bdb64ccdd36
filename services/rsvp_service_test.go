package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"evently.app/models"
)

func TestSubmitRSVPLastWriterWins(t *testing.T) {
	db := setupTestDB(t)
	publishTestEvent(t, db, 1001, "Launch Night", "2030-05-01", "19:00")
	svc := NewRSVPService()
	ctx := context.Background()

	// İlk yanıt: Yes.
	result, err := svc.SubmitRSVP(ctx, 1001, "a@x.com", models.RSVPYes)
	if err != nil {
		t.Fatalf("SubmitRSVP(Yes) hata verdi: %v", err)
	}
	if result.RSVP != [2]int{1, 0} {
		t.Errorf("Yes sonrası sayaçlar %v, [1 0] bekleniyordu", result.RSVP)
	}
	if !strings.HasPrefix(result.QRCode, "data:image/png;base64,") {
		t.Errorf("Yes yanıtı QR kod üretmeli, alınan: %.40q", result.QRCode)
	}

	// Aynı e-posta fikir değiştirir: No. Eski kovadan düşülmeli.
	result, err = svc.SubmitRSVP(ctx, 1001, "a@x.com", models.RSVPNo)
	if err != nil {
		t.Fatalf("SubmitRSVP(No) hata verdi: %v", err)
	}
	if result.RSVP != [2]int{0, 1} {
		t.Errorf("Yes->No sonrası sayaçlar %v, [0 1] bekleniyordu", result.RSVP)
	}
	if result.QRCode != "" {
		t.Error("No yanıtı QR kod üretmemeli")
	}

	// Kayıt çoğaltılmamış olmalı.
	var count int64
	db.Model(&models.Respondent{}).Count(&count)
	if count != 1 {
		t.Errorf("respondent sayısı %d, 1 bekleniyordu", count)
	}
}

func TestSubmitRSVPCountsRecomputed(t *testing.T) {
	db := setupTestDB(t)
	publishTestEvent(t, db, 7, "Workshop Day", "2030-06-15", "10:00")
	svc := NewRSVPService()
	ctx := context.Background()

	responses := []struct {
		email    string
		response models.RSVPResponse
	}{
		{"ali@x.com", models.RSVPYes},
		{"ayse@x.com", models.RSVPYes},
		{"veli@x.com", models.RSVPNo},
		{"ayse@x.com", models.RSVPNo}, // fikir değişikliği
	}
	var last *RSVPResult
	for _, r := range responses {
		var err error
		last, err = svc.SubmitRSVP(ctx, 7, r.email, r.response)
		if err != nil {
			t.Fatalf("SubmitRSVP(%s, %s) hata verdi: %v", r.email, r.response, err)
		}
	}
	if last.RSVP != [2]int{1, 2} {
		t.Errorf("sayaçlar %v, [1 2] bekleniyordu", last.RSVP)
	}

	// Saklanan sayaçlar da türetilmiş değerlerle eşleşmeli.
	var published models.PublishedEvent
	if err := db.Where("event_id = ?", 7).First(&published).Error; err != nil {
		t.Fatalf("published event okunamadı: %v", err)
	}
	if published.YesCount != 1 || published.NoCount != 2 {
		t.Errorf("saklanan sayaçlar [%d %d], [1 2] bekleniyordu", published.YesCount, published.NoCount)
	}
}

func TestSubmitRSVPNormalizesEmail(t *testing.T) {
	db := setupTestDB(t)
	publishTestEvent(t, db, 3, "Meetup", "2030-01-01", "18:00")
	svc := NewRSVPService()
	ctx := context.Background()

	if _, err := svc.SubmitRSVP(ctx, 3, "  Guest@X.Com ", models.RSVPYes); err != nil {
		t.Fatalf("SubmitRSVP hata verdi: %v", err)
	}
	result, err := svc.SubmitRSVP(ctx, 3, "guest@x.com", models.RSVPNo)
	if err != nil {
		t.Fatalf("SubmitRSVP hata verdi: %v", err)
	}
	if result.RSVP != [2]int{0, 1} {
		t.Errorf("büyük/küçük harf farkı ayrı kayıt açmamalı, sayaçlar: %v", result.RSVP)
	}
}

func TestSubmitRSVPValidation(t *testing.T) {
	db := setupTestDB(t)
	publishTestEvent(t, db, 5, "Seminar", "2030-02-02", "09:00")
	svc := NewRSVPService()
	ctx := context.Background()

	if _, err := svc.SubmitRSVP(ctx, 5, "", models.RSVPYes); !errors.Is(err, ErrRSVPInvalidInput) {
		t.Errorf("boş e-posta için ErrRSVPInvalidInput bekleniyordu, alınan: %v", err)
	}
	if _, err := svc.SubmitRSVP(ctx, 5, "a@x.com", "Maybe"); !errors.Is(err, ErrRSVPInvalidResponse) {
		t.Errorf("geçersiz yanıt için ErrRSVPInvalidResponse bekleniyordu, alınan: %v", err)
	}
	if _, err := svc.SubmitRSVP(ctx, 999, "a@x.com", models.RSVPYes); !errors.Is(err, ErrRSVPEventNotFound) {
		t.Errorf("yayın dışı etkinlik için ErrRSVPEventNotFound bekleniyordu, alınan: %v", err)
	}
}

func TestGetPublishedEventNotFound(t *testing.T) {
	setupTestDB(t)
	svc := NewRSVPService()

	if _, err := svc.GetPublishedEvent(context.Background(), 42); !errors.Is(err, ErrRSVPEventNotFound) {
		t.Errorf("ErrRSVPEventNotFound bekleniyordu, alınan: %v", err)
	}
}
