// Package backup exports the whole data set as one JSON document and reads
// it back, verifying its checksum.
package backup

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/mmynk/salonbook/internal/models"
)

// FormatVersion is bumped whenever Document changes shape.
const FormatVersion = 1

// ErrChecksumMismatch is returned by Read when the content does not match
// the recorded checksum.
var ErrChecksumMismatch = errors.New("backup: checksum mismatch")

// Source is the read side of the store needed for an export.
type Source interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
}

// Document is the serialized backup.
type Document struct {
	Version    int     `json:"version"`
	ExportedAt string  `json:"exported_at"`
	Checksum   string  `json:"checksum"` // blake2b-256 of Data, hex
	Data       Payload `json:"data"`
}

// Payload holds the exported rows.
type Payload struct {
	Services     []models.Service     `json:"services"`
	Appointments []models.Appointment `json:"appointments"`
}

func checksum(p Payload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// Export reads every service and appointment from src and writes the
// document to w.
func Export(ctx context.Context, src Source, w io.Writer, now time.Time) error {
	services, err := src.ListServices(ctx)
	if err != nil {
		return fmt.Errorf("backup: list services: %w", err)
	}
	appts, err := src.ListAppointments(ctx)
	if err != nil {
		return fmt.Errorf("backup: list appointments: %w", err)
	}

	doc := Document{
		Version:    FormatVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Data: Payload{
			Services:     nonNil(services),
			Appointments: nonNil(appts),
		},
	}
	if doc.Checksum, err = checksum(doc.Data); err != nil {
		return fmt.Errorf("backup: checksum: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("backup: encode: %w", err)
	}
	return nil
}

// Read decodes a document and verifies its version and checksum.
func Read(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("backup: decode: %w", err)
	}
	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("backup: unsupported version %d", doc.Version)
	}
	sum, err := checksum(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("backup: checksum: %w", err)
	}
	if sum != doc.Checksum {
		return nil, ErrChecksumMismatch
	}
	return &doc, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Handler serves the backup as a file download on GET.
func Handler(src Source, now func() time.Time) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ts := now()
		filename := fmt.Sprintf("salonbook-backup-%s.json", ts.Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if err := Export(r.Context(), src, w, ts); err != nil {
			slog.Error("Backup export failed", "error", err)
			http.Error(w, "backup failed", http.StatusInternalServerError)
			return
		}
		slog.Info("Backup exported", "filename", filename)
	})
}
