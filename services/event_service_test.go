package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"evently.app/models"
)

func sampleDraft() models.Event {
	return models.Event{
		Name:       "Go Ankara Meetup",
		Location:   "Kızılay",
		Date:       "2030-09-10",
		Time:       "19:00",
		Duration:   "2 hours",
		Capacity:   80,
		Type:       models.TypeNameMeetup,
		Visibility: models.VisibilityPublic,
		Organizer:  "Go Ankara",
	}
}

func TestCreateEventValidation(t *testing.T) {
	setupTestDB(t)
	svc := NewEventService()
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*models.Event)
		wantErr error
	}{
		{"ad zorunlu", func(e *models.Event) { e.Name = "" }, ErrEventNameRequired},
		{"yer zorunlu", func(e *models.Event) { e.Location = "" }, ErrEventLocationRequired},
		{"tür zorunlu", func(e *models.Event) { e.Type = "" }, ErrEventTypeRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := sampleDraft()
			tc.mutate(&draft)
			if _, err := svc.CreateEvent(ctx, draft, nil); !errors.Is(err, tc.wantErr) {
				t.Errorf("%v bekleniyordu, alınan: %v", tc.wantErr, err)
			}
		})
	}
}

func TestEventCRUD(t *testing.T) {
	setupTestDB(t)
	svc := NewEventService()
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, sampleDraft(), nil)
	if err != nil {
		t.Fatalf("CreateEvent hata verdi: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("oluşturulan etkinliğin ID'si atanmalı")
	}

	fetched, err := svc.GetEventByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetEventByID hata verdi: %v", err)
	}
	if fetched.Name != "Go Ankara Meetup" {
		t.Errorf("etkinlik adı %q", fetched.Name)
	}

	update := sampleDraft()
	update.Name = "Go Ankara Meetup #42"
	update.Capacity = 120
	updated, err := svc.UpdateEvent(ctx, created.ID, update, nil)
	if err != nil {
		t.Fatalf("UpdateEvent hata verdi: %v", err)
	}
	if updated.Name != "Go Ankara Meetup #42" || updated.Capacity != 120 {
		t.Errorf("güncelleme uygulanmadı: %+v", updated)
	}

	if err := svc.DeleteEvent(ctx, created.ID); err != nil {
		t.Fatalf("DeleteEvent hata verdi: %v", err)
	}
	if _, err := svc.GetEventByID(ctx, created.ID); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("silinen etkinlik için ErrEventNotFound bekleniyordu, alınan: %v", err)
	}
}

func TestEventNotFoundPaths(t *testing.T) {
	setupTestDB(t)
	svc := NewEventService()
	ctx := context.Background()

	if _, err := svc.GetEventByID(ctx, 999); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("GetEventByID: ErrEventNotFound bekleniyordu, alınan: %v", err)
	}
	if _, err := svc.UpdateEvent(ctx, 999, sampleDraft(), nil); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("UpdateEvent: ErrEventNotFound bekleniyordu, alınan: %v", err)
	}
	if err := svc.DeleteEvent(ctx, 999); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("DeleteEvent: ErrEventNotFound bekleniyordu, alınan: %v", err)
	}
	if _, err := svc.PublishEvent(ctx, 999); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("PublishEvent: ErrEventNotFound bekleniyordu, alınan: %v", err)
	}
}

func TestPublishEvent(t *testing.T) {
	setupTestDB(t)
	svc := NewEventService()
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, sampleDraft(), nil)
	if err != nil {
		t.Fatalf("CreateEvent hata verdi: %v", err)
	}

	published, err := svc.PublishEvent(ctx, created.ID)
	if err != nil {
		t.Fatalf("PublishEvent hata verdi: %v", err)
	}
	if published.EventID != created.ID {
		t.Errorf("EventID %d, %d bekleniyordu", published.EventID, created.ID)
	}
	wantSuffix := fmt.Sprintf("/rsvp/%d", created.ID)
	if len(published.ShareLink) == 0 || published.ShareLink[len(published.ShareLink)-len(wantSuffix):] != wantSuffix {
		t.Errorf("paylaşım linki %q, %q ile bitmeli", published.ShareLink, wantSuffix)
	}
	if published.RSVPTuple() != [2]int{0, 0} {
		t.Errorf("yeni yayının sayaçları sıfır olmalı: %v", published.RSVPTuple())
	}
	if published.Name != created.Name || published.Date != created.Date {
		t.Errorf("yayın taslağın anlık kopyası olmalı: %+v", published)
	}
}

func TestRepublishKeepsRSVPData(t *testing.T) {
	setupTestDB(t)
	eventSvc := NewEventService()
	rsvpSvc := NewRSVPService()
	ctx := context.Background()

	created, err := eventSvc.CreateEvent(ctx, sampleDraft(), nil)
	if err != nil {
		t.Fatalf("CreateEvent hata verdi: %v", err)
	}
	first, err := eventSvc.PublishEvent(ctx, created.ID)
	if err != nil {
		t.Fatalf("PublishEvent hata verdi: %v", err)
	}
	if _, err := rsvpSvc.SubmitRSVP(ctx, created.ID, "guest@x.com", models.RSVPYes); err != nil {
		t.Fatalf("SubmitRSVP hata verdi: %v", err)
	}

	// Republish mevcut yayını ezmemeli: link ve RSVP verisi korunur.
	second, err := eventSvc.PublishEvent(ctx, created.ID)
	if err != nil {
		t.Fatalf("ikinci PublishEvent hata verdi: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("republish yeni kayıt açmamalı: %d != %d", second.ID, first.ID)
	}
	if second.ShareLink != first.ShareLink {
		t.Errorf("paylaşım linki değişmemeli: %q != %q", second.ShareLink, first.ShareLink)
	}
	if second.RSVPTuple() != [2]int{1, 0} {
		t.Errorf("RSVP verisi korunmalı, sayaçlar: %v", second.RSVPTuple())
	}
}
