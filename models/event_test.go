package models

import (
	"testing"
	"time"
)

func TestEventMoment(t *testing.T) {
	moment, ok := EventMoment("2030-05-01", "19:30")
	if !ok {
		t.Fatal("geçerli tarih+saat çözülemedi")
	}
	want := time.Date(2030, 5, 1, 19, 30, 0, 0, time.Local)
	if !moment.Equal(want) {
		t.Errorf("çözülen an %v, %v bekleniyordu", moment, want)
	}
}

func TestEventMomentMissingFields(t *testing.T) {
	cases := []struct {
		name  string
		date  string
		clock string
	}{
		{"tarih boş", "", "19:30"},
		{"saat boş", "2030-05-01", ""},
		{"ikisi de boş", "", ""},
		{"tarih bozuk", "01/05/2030", "19:30"},
		{"saat bozuk", "2030-05-01", "7pm"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := EventMoment(tc.date, tc.clock); ok {
				t.Errorf("EventMoment(%q, %q) çözülmemeliydi", tc.date, tc.clock)
			}
		})
	}
}

func TestNameFromEmail(t *testing.T) {
	if got := NameFromEmail("ali.veli@x.com"); got != "ali.veli" {
		t.Errorf("NameFromEmail: %q", got)
	}
	if got := NameFromEmail("no-at-sign"); got != "no-at-sign" {
		t.Errorf("@ içermeyen girdi olduğu gibi dönmeli: %q", got)
	}
}
