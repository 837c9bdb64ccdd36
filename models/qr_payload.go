package models

import "encoding/json"

// QRPayloadKind taranan QR içeriğinin hangi biçimde olduğunu ayırt eder.
type QRPayloadKind int

const (
	// QRPayloadAttendance güncel biçim: {"eventId": N, "email": "...", "response": "Yes"}.
	// Katılım işaretlemeye yol açar.
	QRPayloadAttendance QRPayloadKind = iota
	// QRPayloadLegacy eski biçim: {"name": "...", "email": "...", "rsvp": "..."}.
	// Sadece görüntülenir, katılım işaretlemez.
	QRPayloadLegacy
	// QRPayloadRaw JSON olarak parse edilemeyen içerik. Ham metin gösterilir.
	QRPayloadRaw
)

// QRPayload taranan içeriğin çözülmüş hali. Kind alanına göre dolu alanlar değişir.
type QRPayload struct {
	Kind     QRPayloadKind
	EventID  uint
	Email    string
	Response string
	Name     string
	RSVP     string
	Raw      string
}

// rawQRPayload iki biçimin ortak süper kümesi.
type rawQRPayload struct {
	EventID  *uint  `json:"eventId"`
	Email    string `json:"email"`
	Response string `json:"response"`
	Name     string `json:"name"`
	RSVP     string `json:"rsvp"`
}

// DecodeQRPayload taranan metni etiketli birliğe çözer.
// Ayırt edici alan eventId'nin varlığıdır; eventId ve email birlikte doluysa
// katılım biçimidir. JSON parse hatası ölümcül değildir, ham metne düşülür.
func DecodeQRPayload(text string) QRPayload {
	var raw rawQRPayload
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return QRPayload{Kind: QRPayloadRaw, Raw: text}
	}
	if raw.EventID != nil && *raw.EventID != 0 && raw.Email != "" {
		return QRPayload{
			Kind:     QRPayloadAttendance,
			EventID:  *raw.EventID,
			Email:    raw.Email,
			Response: raw.Response,
			Raw:      text,
		}
	}
	if raw.Name != "" || raw.Email != "" || raw.RSVP != "" {
		return QRPayload{
			Kind:  QRPayloadLegacy,
			Name:  raw.Name,
			Email: raw.Email,
			RSVP:  raw.RSVP,
			Raw:   text,
		}
	}
	// Geçerli JSON ama tanıdık alan yok; ham gösterim en güvenlisi.
	return QRPayload{Kind: QRPayloadRaw, Raw: text}
}
