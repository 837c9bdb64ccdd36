package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"evently.app/configs"
	"evently.app/configs/configslog"
	"evently.app/models"
	"evently.app/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrAuthInvalidInput       AuthServiceError = "geçersiz girdi verisi"
	ErrAuthEmailTaken         AuthServiceError = "bu e-posta zaten kayıtlı"
	ErrAuthInvalidCredentials AuthServiceError = "e-posta veya parola hatalı"
	ErrAuthRegisterFailed     AuthServiceError = "kayıt oluşturulamadı"
	ErrAuthMailDomainRejected AuthServiceError = "e-posta alan adı kabul edilmiyor"
	ErrAuthCodeSendFailed     AuthServiceError = "doğrulama kodu üretilemedi"
	ErrAuthInvalidCode        AuthServiceError = "doğrulama kodu geçersiz"
)

// En fazla kaç başarısız deneme sonrası kodun geçersiz sayılacağı.
// Sınırsız deneme kaba kuvvetle 6 haneyi kırılabilir yapar.
const maxVerifyAttempts = 5

// IAuthService kayıt, giriş ve e-posta doğrulama işlemleri için arayüz.
type IAuthService interface {
	Register(ctx context.Context, name, email, password, passwordConfirmation string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	SendVerificationCode(ctx context.Context, email string) (string, error)
	VerifyCode(ctx context.Context, email, code string) error
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	userRepo repositories.IUserRepository
	codeRepo repositories.IVerificationCodeRepository
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
		codeRepo: repositories.NewVerificationCodeRepository(),
	}
}

// Register yeni kullanıcı oluşturur. Parola bcrypt ile hashlenir.
func (s *AuthService) Register(ctx context.Context, name, email, password, passwordConfirmation string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" {
		return nil, ErrAuthInvalidInput
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: parola en az 8 karakter olmalı", ErrAuthInvalidInput)
	}
	if password != passwordConfirmation {
		return nil, fmt.Errorf("%w: parola doğrulaması eşleşmiyor", ErrAuthInvalidInput)
	}

	taken, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrAuthEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrAuthRegisterFailed
	}

	user := models.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		return nil, ErrAuthRegisterFailed
	}

	configslog.SLog.Infof("Yeni kullanıcı kaydı: %s (ID %d)", email, user.ID)
	return &user, nil
}

// Login e-posta + parola doğrular. Kullanıcının olup olmadığı dışarı
// sızdırılmaz; iki durumda da aynı hata döner.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrAuthInvalidInput
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrAuthInvalidCredentials
	}
	return user, nil
}

// SendVerificationCode e-posta için 6 haneli kod üretip cache'ler.
// E-posta izin verilen alan adında olmalıdır. Kod TTL süresi (varsayılan
// 10 dakika) boyunca geçerlidir; aynı adrese yeni istek eski kodu ezer.
func (s *AuthService) SendVerificationCode(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)
	cfg := configs.GetConfig()
	if email == "" || !strings.HasSuffix(email, "@"+cfg.AllowedMailDomain) {
		return "", ErrAuthMailDomainRejected
	}

	// Süresi geçmiş kodları fırsat bu fırsat temizle.
	if _, err := s.codeRepo.DeleteExpiredBefore(ctx, time.Now().UTC()); err != nil {
		configslog.SLog.Warnf("Süresi geçmiş kodlar temizlenemedi: %v", err)
	}

	code, err := generateVerificationCode()
	if err != nil {
		return "", ErrAuthCodeSendFailed
	}

	record := models.VerificationCode{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().UTC().Add(cfg.CodeTTL),
	}
	if err := s.codeRepo.Upsert(ctx, &record); err != nil {
		return "", ErrAuthCodeSendFailed
	}

	configslog.SLog.Infof("Doğrulama kodu üretildi: %s (TTL %s)", email, cfg.CodeTTL)
	return code, nil
}

// VerifyCode e-posta + kod eşleşmesini kontrol eder. Kod tek kullanımlıktır:
// başarılı doğrulamada silinir. Başarısız denemeler sayılır; sınır aşılınca
// kod kalıcı geçersizdir.
func (s *AuthService) VerifyCode(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || len(code) != 6 {
		return ErrAuthInvalidCode
	}

	record, err := s.codeRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAuthInvalidCode
		}
		return err
	}

	now := time.Now().UTC()
	if record.Expired(now) || record.Attempts >= maxVerifyAttempts {
		return ErrAuthInvalidCode
	}
	if record.Code != code {
		if err := s.codeRepo.IncrementAttempts(ctx, record.ID); err != nil {
			configslog.SLog.Warnf("Deneme sayacı artırılamadı: %v", err)
		}
		return ErrAuthInvalidCode
	}

	if err := s.codeRepo.DeleteByEmail(ctx, email); err != nil {
		return err
	}
	configslog.SLog.Infof("E-posta doğrulandı: %s", email)
	return nil
}

// generateVerificationCode kriptografik rastgele 6 haneli kod üretir.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ IAuthService = (*AuthService)(nil)
