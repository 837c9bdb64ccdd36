package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"evently.app/models"
)

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	svc := NewAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ayşe", "ayse@gmail.com", "correct-horse", "correct-horse")
	if err != nil {
		t.Fatalf("Register hata verdi: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("kullanıcı ID'si atanmalı")
	}
	if user.PasswordHash == "correct-horse" {
		t.Error("parola düz metin saklanmamalı")
	}

	logged, err := svc.Login(ctx, "AYSE@gmail.com", "correct-horse")
	if err != nil {
		t.Fatalf("Login hata verdi: %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("Login yanlış kullanıcı döndü: %d", logged.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	setupTestDB(t)
	svc := NewAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "A", "a@gmail.com", "short", "short"); !errors.Is(err, ErrAuthInvalidInput) {
		t.Errorf("kısa parola için ErrAuthInvalidInput bekleniyordu, alınan: %v", err)
	}
	if _, err := svc.Register(ctx, "A", "a@gmail.com", "longenough", "different"); !errors.Is(err, ErrAuthInvalidInput) {
		t.Errorf("eşleşmeyen doğrulama için ErrAuthInvalidInput bekleniyordu, alınan: %v", err)
	}

	if _, err := svc.Register(ctx, "A", "taken@gmail.com", "longenough", "longenough"); err != nil {
		t.Fatalf("Register hata verdi: %v", err)
	}
	if _, err := svc.Register(ctx, "B", "taken@gmail.com", "longenough", "longenough"); !errors.Is(err, ErrAuthEmailTaken) {
		t.Errorf("tekrar kayıt için ErrAuthEmailTaken bekleniyordu, alınan: %v", err)
	}
}

func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	setupTestDB(t)
	svc := NewAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "A", "real@gmail.com", "longenough", "longenough"); err != nil {
		t.Fatalf("Register hata verdi: %v", err)
	}

	_, wrongPass := svc.Login(ctx, "real@gmail.com", "wrong-password")
	_, unknownUser := svc.Login(ctx, "ghost@gmail.com", "whatever-pass")
	if !errors.Is(wrongPass, ErrAuthInvalidCredentials) || !errors.Is(unknownUser, ErrAuthInvalidCredentials) {
		t.Errorf("iki durumda da aynı hata dönmeli: %v / %v", wrongPass, unknownUser)
	}
}

func TestSendVerificationCode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService()
	ctx := context.Background()

	code, err := svc.SendVerificationCode(ctx, "guest@gmail.com")
	if err != nil {
		t.Fatalf("SendVerificationCode hata verdi: %v", err)
	}
	if len(code) != 6 {
		t.Errorf("kod 6 haneli olmalı, alınan: %q", code)
	}
	for _, ch := range code {
		if ch < '0' || ch > '9' {
			t.Errorf("kod sadece rakam içermeli: %q", code)
		}
	}

	// Yeni istek eski kodu ezer, ikinci kayıt açılmaz.
	if _, err := svc.SendVerificationCode(ctx, "guest@gmail.com"); err != nil {
		t.Fatalf("ikinci istek hata verdi: %v", err)
	}
	var count int64
	db.Model(&models.VerificationCode{}).Count(&count)
	if count != 1 {
		t.Errorf("e-posta başına tek kod kaydı olmalı, sayı: %d", count)
	}
}

func TestSendVerificationCodeRejectsForeignDomains(t *testing.T) {
	setupTestDB(t)
	svc := NewAuthService()

	if _, err := svc.SendVerificationCode(context.Background(), "guest@outlook.com"); !errors.Is(err, ErrAuthMailDomainRejected) {
		t.Errorf("ErrAuthMailDomainRejected bekleniyordu, alınan: %v", err)
	}
}

func TestVerifyCodeSingleUse(t *testing.T) {
	setupTestDB(t)
	svc := NewAuthService()
	ctx := context.Background()

	code, err := svc.SendVerificationCode(ctx, "guest@gmail.com")
	if err != nil {
		t.Fatalf("SendVerificationCode hata verdi: %v", err)
	}
	if err := svc.VerifyCode(ctx, "guest@gmail.com", code); err != nil {
		t.Fatalf("VerifyCode hata verdi: %v", err)
	}
	// Aynı kod ikinci kez kullanılamaz.
	if err := svc.VerifyCode(ctx, "guest@gmail.com", code); !errors.Is(err, ErrAuthInvalidCode) {
		t.Errorf("ikinci kullanım için ErrAuthInvalidCode bekleniyordu, alınan: %v", err)
	}
}

func TestVerifyCodeWrongCodeCountsAttempts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService()
	ctx := context.Background()

	code, err := svc.SendVerificationCode(ctx, "guest@gmail.com")
	if err != nil {
		t.Fatalf("SendVerificationCode hata verdi: %v", err)
	}
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	for i := 0; i < maxVerifyAttempts; i++ {
		if err := svc.VerifyCode(ctx, "guest@gmail.com", wrong); !errors.Is(err, ErrAuthInvalidCode) {
			t.Fatalf("yanlış kod için ErrAuthInvalidCode bekleniyordu, alınan: %v", err)
		}
	}

	var record models.VerificationCode
	if err := db.Where("email = ?", "guest@gmail.com").First(&record).Error; err != nil {
		t.Fatalf("kod kaydı okunamadı: %v", err)
	}
	if record.Attempts != maxVerifyAttempts {
		t.Errorf("deneme sayacı %d, %d bekleniyordu", record.Attempts, maxVerifyAttempts)
	}

	// Sınır aşıldıktan sonra doğru kod bile kabul edilmez.
	if err := svc.VerifyCode(ctx, "guest@gmail.com", code); !errors.Is(err, ErrAuthInvalidCode) {
		t.Errorf("sınır sonrası doğru kod geçersiz olmalı, alınan: %v", err)
	}
}

func TestVerifyCodeExpiry(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService()
	ctx := context.Background()

	code, err := svc.SendVerificationCode(ctx, "guest@gmail.com")
	if err != nil {
		t.Fatalf("SendVerificationCode hata verdi: %v", err)
	}

	// Kodun süresini elle geçmişe çek.
	if err := db.Model(&models.VerificationCode{}).
		Where("email = ?", "guest@gmail.com").
		Update("expires_at", time.Now().UTC().Add(-time.Minute)).Error; err != nil {
		t.Fatalf("süre güncellenemedi: %v", err)
	}

	if err := svc.VerifyCode(ctx, "guest@gmail.com", code); !errors.Is(err, ErrAuthInvalidCode) {
		t.Errorf("süresi geçmiş kod için ErrAuthInvalidCode bekleniyordu, alınan: %v", err)
	}
}
