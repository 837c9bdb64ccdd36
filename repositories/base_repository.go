package repositories

import (
	"context"
	"errors"

	"evently.app/pkg/queryparams"

	"gorm.io/gorm"
)

// ErrNotFound kayıt bulunamadığında tüm repository'lerin döndürdüğü ortak hata.
var ErrNotFound = errors.New("kayıt bulunamadı")

// ContextWithTx verilen transaction'ı context'e koyar. Servis katmanı
// db.Transaction bloğu içinde repository çağrılarını bu context ile yapar.
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, "tx", tx)
}

// dbFromContext context'te transaction varsa onu, yoksa verilen db'yi döndürür.
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}

// IBaseRepository tüm koleksiyonların paylaştığı temel CRUD arayüzü.
type IBaseRepository[T any] interface {
	FindByID(ctx context.Context, id uint) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, entity *T) error
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
}

// BaseRepository IBaseRepository'nin GORM implementasyonu.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]bool
}

// NewBaseRepository yeni bir BaseRepository örneği oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db, allowedSortColumns: map[string]bool{}}
}

// SetAllowedSortColumns sıralamaya izin verilen sütunları belirler.
func (r *BaseRepository[T]) SetAllowedSortColumns(cols []string) {
	r.allowedSortColumns = make(map[string]bool, len(cols))
	for _, c := range cols {
		r.allowedSortColumns[c] = true
	}
}

// OrderClause izin verilen sütunlara göre güvenli bir ORDER BY ifadesi üretir.
// Bilinmeyen sütun istenirse varsayılana düşer.
func (r *BaseRepository[T]) OrderClause(params queryparams.ListParams) string {
	col := params.SortBy
	if !r.allowedSortColumns[col] {
		col = queryparams.DefaultSortBy
	}
	order := params.OrderBy
	if order != "asc" && order != "desc" {
		order = queryparams.DefaultOrderBy
	}
	return col + " " + order
}

func (r *BaseRepository[T]) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	if id == 0 {
		return nil, errors.New("geçersiz ID")
	}
	var entity T
	err := r.getDB(ctx).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	var entities []T
	err := r.getDB(ctx).Find(&entities).Error
	return entities, err
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.getDB(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.getDB(ctx).Save(entity).Error
}

func (r *BaseRepository[T]) Delete(ctx context.Context, entity *T) error {
	return r.getDB(ctx).Delete(entity).Error
}

var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)
