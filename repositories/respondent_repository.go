package repositories

import (
	"context"
	"errors"

	"evently.app/configs"
	"evently.app/configs/configslog"
	"evently.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IRespondentRepository LCV yanıtı veritabanı işlemleri için arayüz.
type IRespondentRepository interface {
	FindByEventAndEmail(ctx context.Context, publishedEventID uint, email string) (*models.Respondent, error)
	FindByEventID(ctx context.Context, publishedEventID uint) ([]models.Respondent, error)
	Upsert(ctx context.Context, respondent *models.Respondent) error
	CountByResponse(ctx context.Context, publishedEventID uint, response models.RSVPResponse) (int64, error)
}

// RespondentRepository IRespondentRepository arayüzünü uygular.
type RespondentRepository struct {
	db *gorm.DB
}

// NewRespondentRepository yeni bir RespondentRepository örneği oluşturur.
func NewRespondentRepository() IRespondentRepository {
	return &RespondentRepository{db: configs.GetDB()}
}

// NewRespondentRepositoryTx transaction'a bağlı repository oluşturur.
func NewRespondentRepositoryTx(tx *gorm.DB) IRespondentRepository {
	return &RespondentRepository{db: tx}
}

func (r *RespondentRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *RespondentRepository) FindByEventAndEmail(ctx context.Context, publishedEventID uint, email string) (*models.Respondent, error) {
	if publishedEventID == 0 || email == "" {
		return nil, errors.New("geçersiz parametre")
	}
	var respondent models.Respondent
	err := r.getDB(ctx).Where("published_event_id = ? AND email = ?", publishedEventID, email).First(&respondent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RespondentRepository.FindByEventAndEmail: DB error", zap.Error(err))
		return nil, err
	}
	return &respondent, nil
}

func (r *RespondentRepository) FindByEventID(ctx context.Context, publishedEventID uint) ([]models.Respondent, error) {
	if publishedEventID == 0 {
		return nil, errors.New("geçersiz ID")
	}
	var respondents []models.Respondent
	err := r.getDB(ctx).Where("published_event_id = ?", publishedEventID).
		Order("created_at asc").Find(&respondents).Error
	if err != nil {
		configslog.Log.Error("RespondentRepository.FindByEventID: DB error", zap.Uint("published_event_id", publishedEventID), zap.Error(err))
	}
	return respondents, err
}

// Upsert (event, email) çifti için yanıtı yazar: varsa üzerine yazar, yoksa
// oluşturur. İkinci gönderim kayıt çoğaltmaz.
func (r *RespondentRepository) Upsert(ctx context.Context, respondent *models.Respondent) error {
	if respondent == nil || respondent.PublishedEventID == 0 || respondent.Email == "" {
		return errors.New("geçersiz respondent verisi")
	}
	db := r.getDB(ctx)
	return db.Where(models.Respondent{
		PublishedEventID: respondent.PublishedEventID,
		Email:            respondent.Email,
	}).Assign(map[string]interface{}{
		"response": respondent.Response,
	}).FirstOrCreate(respondent).Error
}

func (r *RespondentRepository) CountByResponse(ctx context.Context, publishedEventID uint, response models.RSVPResponse) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Respondent{}).
		Where("published_event_id = ? AND response = ?", publishedEventID, response).
		Count(&count).Error
	return count, err
}

var _ IRespondentRepository = (*RespondentRepository)(nil)
