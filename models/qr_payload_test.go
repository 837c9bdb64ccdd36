package models

import "testing"

func TestDecodeQRPayload(t *testing.T) {
	cases := []struct {
		name string
		text string
		want QRPayload
	}{
		{
			name: "katılım biçimi",
			text: `{"eventId":1001,"email":"a@x.com","response":"Yes"}`,
			want: QRPayload{Kind: QRPayloadAttendance, EventID: 1001, Email: "a@x.com", Response: "Yes"},
		},
		{
			name: "katılım biçimi No yanıtıyla",
			text: `{"eventId":7,"email":"b@x.com","response":"No"}`,
			want: QRPayload{Kind: QRPayloadAttendance, EventID: 7, Email: "b@x.com", Response: "No"},
		},
		{
			name: "eski biçim",
			text: `{"name":"Ali","email":"ali@x.com","rsvp":"Yes"}`,
			want: QRPayload{Kind: QRPayloadLegacy, Name: "Ali", Email: "ali@x.com", RSVP: "Yes"},
		},
		{
			name: "eventId sıfırsa eski biçime düşer",
			text: `{"eventId":0,"email":"a@x.com"}`,
			want: QRPayload{Kind: QRPayloadLegacy, Email: "a@x.com"},
		},
		{
			name: "eventId var ama email yoksa eski biçim sayılmaz katılım da olmaz",
			text: `{"eventId":5}`,
			want: QRPayload{Kind: QRPayloadRaw},
		},
		{
			name: "JSON olmayan içerik",
			text: "https://example.com/x",
			want: QRPayload{Kind: QRPayloadRaw},
		},
		{
			name: "tanıdık alan içermeyen JSON",
			text: `{"foo":"bar"}`,
			want: QRPayload{Kind: QRPayloadRaw},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeQRPayload(tc.text)
			if got.Kind != tc.want.Kind {
				t.Fatalf("Kind %v, %v bekleniyordu", got.Kind, tc.want.Kind)
			}
			if got.EventID != tc.want.EventID || got.Email != tc.want.Email ||
				got.Response != tc.want.Response || got.Name != tc.want.Name || got.RSVP != tc.want.RSVP {
				t.Errorf("alanlar eşleşmiyor:\n got: %+v\nwant: %+v", got, tc.want)
			}
			if got.Raw != tc.text {
				t.Errorf("Raw her zaman orijinal metni taşımalı, alınan: %q", got.Raw)
			}
		})
	}
}
