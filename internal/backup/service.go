// Package backup serializes the full store into one versioned bundle and
// restores it. Import stages and validates the whole bundle before touching
// the store, so a malformed file can never leave mixed old and new data.
package backup

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/schema"
	"github.com/clinicdesk/clinicdesk/internal/store"
)

// FormatVersion tags every bundle this build produces.
const FormatVersion = "2.5.0"

// Bundle is the single snapshot document used for file export/import and
// remote backup. Every collection field is optional: a partial bundle only
// overwrites what it carries. Exams in particular may be absent in files
// written by older releases.
type Bundle struct {
	Version      string               `json:"version"`
	ExportedAt   string               `json:"exportedAt"`
	LastModified int64                `json:"lastModified"`
	Patients     []schema.Patient     `json:"patients"`
	Visits       []schema.Visit       `json:"visits"`
	Appointments []schema.Appointment `json:"appointments"`
	Settings     *schema.Settings     `json:"settings"`
	Drugs        []schema.Drug        `json:"drugs"`
	Exams        []schema.Exam        `json:"exams,omitempty"`
}

// Result is the outcome shape surfaced to the caller (and, upstream, to the
// status banner in the UI layer).
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Service reads and writes bundles against one store.
type Service struct {
	store *store.Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewService wires the backup service to a store.
func NewService(st *store.Store, log zerolog.Logger) *Service {
	return &Service{
		store: st,
		log:   log.With().Str("component", "backup").Logger(),
		now:   time.Now,
	}
}

// Export reads every collection into a bundle. Pure read, no store side
// effects.
func (s *Service) Export() (*Bundle, error) {
	patients, err := s.store.Patients()
	if err != nil {
		return nil, err
	}
	visits, err := s.store.Visits("")
	if err != nil {
		return nil, err
	}
	appointments, err := s.store.Appointments("")
	if err != nil {
		return nil, err
	}
	settings, err := s.store.Settings()
	if err != nil {
		return nil, err
	}
	drugs, err := s.store.Drugs()
	if err != nil {
		return nil, err
	}
	exams, err := s.store.Exams()
	if err != nil {
		return nil, err
	}
	lastModified, err := s.store.LastModified()
	if err != nil {
		return nil, err
	}

	// Empty collections export as [] rather than null: a present-but-empty
	// field overwrites on import, only an absent field leaves data untouched.
	return &Bundle{
		Version:      FormatVersion,
		ExportedAt:   s.now().UTC().Format(time.RFC3339),
		LastModified: lastModified.UnixMilli(),
		Patients:     orEmpty(patients),
		Visits:       orEmpty(visits),
		Appointments: orEmpty(appointments),
		Settings:     &settings,
		Drugs:        orEmpty(drugs),
		Exams:        orEmpty(exams),
	}, nil
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// Import decodes raw bundle JSON and applies it. Decoding failures change
// nothing and come back as a failure Result.
func (s *Service) Import(raw []byte) Result {
	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		s.log.Warn().Err(err).Msg("import rejected: malformed bundle")
		return Result{Success: false, Message: "Il file non è un backup valido."}
	}
	return s.ImportBundle(&b)
}

// ImportBundle overwrites every collection the bundle carries, leaves absent
// ones untouched, and fires exactly one change notification. An empty bundle
// is a valid no-op overwrite of nothing.
func (s *Service) ImportBundle(b *Bundle) Result {
	if b == nil {
		return Result{Success: false, Message: "Nessun dato da importare."}
	}

	snap := store.Snapshot{
		Patients:     b.Patients,
		Visits:       b.Visits,
		Appointments: b.Appointments,
		Settings:     b.Settings,
		Drugs:        b.Drugs,
		Exams:        b.Exams,
	}
	if err := s.store.ReplaceAll(snap); err != nil {
		s.log.Error().Err(err).Msg("import failed")
		return Result{Success: false, Message: "Errore importazione: " + err.Error()}
	}

	s.log.Info().
		Int("patients", len(b.Patients)).
		Int("visits", len(b.Visits)).
		Str("version", b.Version).
		Msg("database restored from bundle")
	return Result{Success: true, Message: "Database ripristinato."}
}
