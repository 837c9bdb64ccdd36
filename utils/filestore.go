package utils

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"evently.app/configs"
	"evently.app/configs/configslog"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// İzin verilen fotoğraf uzantıları (orijinal API ile aynı küme).
var allowedPhotoExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// ErrUnsupportedPhotoType desteklenmeyen dosya uzantısı hatası.
var ErrUnsupportedPhotoType = errors.New("desteklenmeyen fotoğraf türü")

// SaveUploadedPhoto yüklenen fotoğrafı upload dizinine UUID isimle kaydeder
// ve kaydedilen dosya adını döndürür.
func SaveUploadedPhoto(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", errors.New("dosya yok")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExtensions[ext] {
		return "", ErrUnsupportedPhotoType
	}

	cfg := configs.GetConfig()
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(cfg.UploadDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		// Yarım kalmış dosyayı bırakma.
		_ = os.Remove(dst.Name())
		return "", err
	}
	return filename, nil
}

// DeletePhoto kaydedilmiş fotoğraf dosyasını siler. Dosyanın zaten olmaması
// hata sayılmaz.
func DeletePhoto(filename string) {
	if filename == "" {
		return
	}
	cfg := configs.GetConfig()
	path := filepath.Join(cfg.UploadDir, filepath.Base(filename))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		configslog.Log.Warn("Fotoğraf silinemedi", zap.String("file", filename), zap.Error(err))
	}
}

// PhotoURL kaydedilmiş dosya adından public URL üretir.
func PhotoURL(filename string) string {
	if filename == "" {
		return ""
	}
	cfg := configs.GetConfig()
	return strings.TrimRight(cfg.BaseURL, "/") + "/uploads/" + filename
}
