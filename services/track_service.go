package services

import (
	"context"
	"errors"

	"evently.app/models"
	"evently.app/repositories"
)

// TrackServiceError özel servis hataları
type TrackServiceError string

func (e TrackServiceError) Error() string { return string(e) }

const ErrTrackEventNotFound TrackServiceError = "izlenecek etkinlik bulunamadı"

// RSVPSplit Yes/No dağılımı. HasData ikisi de sıfırken false'tur; frontend
// bu durumda "No RSVP data yet" gösterir.
type RSVPSplit struct {
	Yes     int  `json:"yes"`
	No      int  `json:"no"`
	HasData bool `json:"hasData"`
}

// EventTracking bir yayınlanmış etkinliğin salt-okunur izleme görünümü.
// Katılım serisi check-in günlüğünden gün bazında türetilir; ayrı bir seri
// sayacı tutulmaz (sayaç = günlükteki satır sayısı).
type EventTracking struct {
	EventID       uint                             `json:"eventId"`
	Name          string                           `json:"name"`
	Location      string                           `json:"location"`
	Date          string                           `json:"date"`
	Time          string                           `json:"time"`
	ShareLink     string                           `json:"shareLink"`
	Participation []repositories.DailyCheckInCount `json:"participation"` // Boşsa "no data"
	TotalCheckIns int64                            `json:"totalCheckIns"`
	RSVP          RSVPSplit                        `json:"rsvp"`
	Attendees     []models.Attendee                `json:"attendees"`
	Respondents   []models.Respondent              `json:"respondents"`
}

// ITrackService izleme/grafik verileri için salt-okunur arayüz.
type ITrackService interface {
	GetTracking(ctx context.Context, eventID uint) (*EventTracking, error)
	GetAllTracking(ctx context.Context) ([]EventTracking, error)
}

// TrackService ITrackService arayüzünü uygular.
type TrackService struct {
	publishedRepo repositories.IPublishedEventRepository
	attendeeRepo  repositories.IAttendeeRepository
}

// NewTrackService yeni bir TrackService örneği oluşturur.
func NewTrackService() ITrackService {
	return &TrackService{
		publishedRepo: repositories.NewPublishedEventRepository(),
		attendeeRepo:  repositories.NewAttendeeRepository(),
	}
}

// GetTracking tek etkinliğin izleme görünümünü üretir. Hiçbir şey mutasyona
// uğramaz; eksik alanlar (fotoğrafsız, yanıtsız, katılımsız etkinlik) boş
// koleksiyon ve HasData=false olarak döner, hata üretmez.
func (s *TrackService) GetTracking(ctx context.Context, eventID uint) (*EventTracking, error) {
	published, err := s.publishedRepo.FindByEventIDWithRelations(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTrackEventNotFound
		}
		return nil, err
	}
	return s.buildTracking(ctx, published)
}

// GetAllTracking dashboard'un listelediği tüm yayınların izleme görünümleri.
func (s *TrackService) GetAllTracking(ctx context.Context) ([]EventTracking, error) {
	published, err := s.publishedRepo.FindAllWithRelations(ctx)
	if err != nil {
		return nil, err
	}
	trackings := make([]EventTracking, 0, len(published))
	for i := range published {
		t, err := s.buildTracking(ctx, &published[i])
		if err != nil {
			return nil, err
		}
		trackings = append(trackings, *t)
	}
	return trackings, nil
}

func (s *TrackService) buildTracking(ctx context.Context, published *models.PublishedEvent) (*EventTracking, error) {
	series, err := s.attendeeRepo.DailyCheckInCounts(ctx, published.ID)
	if err != nil {
		return nil, err
	}
	if series == nil {
		series = []repositories.DailyCheckInCount{}
	}
	total, err := s.attendeeRepo.CountCheckIns(ctx, published.ID)
	if err != nil {
		return nil, err
	}

	attendees := published.Attendees
	if attendees == nil {
		attendees = []models.Attendee{}
	}
	respondents := published.Respondents
	if respondents == nil {
		respondents = []models.Respondent{}
	}

	return &EventTracking{
		EventID:       published.EventID,
		Name:          published.Name,
		Location:      published.Location,
		Date:          published.Date,
		Time:          published.Time,
		ShareLink:     published.ShareLink,
		Participation: series,
		TotalCheckIns: total,
		RSVP: RSVPSplit{
			Yes:     published.YesCount,
			No:      published.NoCount,
			HasData: published.YesCount > 0 || published.NoCount > 0,
		},
		Attendees:   attendees,
		Respondents: respondents,
	}, nil
}

var _ ITrackService = (*TrackService)(nil)
