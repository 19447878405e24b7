package messaging

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mmynk/salonbook/internal/models"
	"github.com/mmynk/salonbook/internal/scheduler"
)

// ErrNoPhone is returned when a reminder link is requested for an
// appointment without a usable phone number.
var ErrNoPhone = errors.New("messaging: appointment has no phone number")

// ReminderData is the data available to reminder templates.
type ReminderData struct {
	ClientName    string
	Date          string
	Time          string
	Services      string // names joined with ", "
	Total         string // effective price with two decimals
	PaymentMethod string
	Notes         string
}

// NewReminderData builds the template data for appt. Service names are
// resolved from catalog in bundle order; services no longer in the catalog
// are skipped.
func NewReminderData(appt models.Appointment, catalog []models.Service) ReminderData {
	names := make(map[string]string, len(catalog))
	for _, s := range catalog {
		names[s.ID] = s.Name
	}
	var services []string
	for _, id := range appt.Services {
		if name, ok := names[id]; ok {
			services = append(services, name)
		}
	}

	return ReminderData{
		ClientName:    appt.ClientName,
		Date:          formatDisplayDate(appt.Date),
		Time:          appt.Time,
		Services:      strings.Join(services, ", "),
		Total:         fmt.Sprintf("%.2f", scheduler.EffectivePrice(appt, catalog)),
		PaymentMethod: appt.PaymentMethod,
		Notes:         appt.Notes,
	}
}

// formatDisplayDate turns YYYY-MM-DD into DD/MM/YYYY; other input is
// returned unchanged.
func formatDisplayDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// Composer renders reminder messages from a fixed template.
type Composer struct {
	renderer Renderer
	template string
}

// NewComposer returns a Composer using tmpl, which may reference any field
// of ReminderData.
func NewComposer(tmpl string) *Composer {
	return &Composer{template: tmpl}
}

// Compose renders the reminder for appt.
func (c *Composer) Compose(appt models.Appointment, catalog []models.Service) (string, error) {
	return c.renderer.Render("reminder", c.template, NewReminderData(appt, catalog))
}

// PhoneDigits strips everything but digits from phone.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppLink returns a wa.me link that opens a chat with phone prefilled
// with message.
func WhatsAppLink(phone, message string) (string, error) {
	digits := PhoneDigits(phone)
	if digits == "" {
		return "", ErrNoPhone
	}
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + digits + "?text=" + text, nil
}
