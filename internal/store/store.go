// Package store implements the clinic document store: seven named collections
// over a pluggable key-value Backend, a global change channel, and a
// monotonic last-modified timestamp. All screens and services read and write
// through it.
package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/schema"
)

// Fixed collection keys in the backing medium.
const (
	keyPatients     = "clinic_patients"
	keyVisits       = "clinic_visits"
	keyAppointments = "clinic_appointments"
	keyDiagnoses    = "clinic_diagnoses"
	keyDrugs        = "clinic_drugs"
	keyExams        = "clinic_exams"
	keySettings     = "clinic_settings"
	keyLastModified = "clinic_last_modified"
)

// ErrNoClinics is returned when a settings write would leave the clinic list
// empty. At least one clinic must always remain.
var ErrNoClinics = fmt.Errorf("settings must keep at least one clinic")

// Store owns the collections. All operations are safe for concurrent use from
// multiple goroutines within one process; cross-process coordination is
// deliberately not provided (two processes on the same backend clobber each
// other, as in the original design).
type Store struct {
	backend Backend
	log     zerolog.Logger

	mu           sync.Mutex
	listeners    map[int]func()
	nextListener int
}

// New wraps the given backend. Call Initialize before first use to seed the
// catalog collections.
func New(backend Backend, log zerolog.Logger) *Store {
	return &Store{
		backend:   backend,
		log:       log.With().Str("component", "store").Logger(),
		listeners: make(map[int]func()),
	}
}

// Backend exposes the underlying medium so sibling services (remote backup)
// can keep their own keys beside the collections.
func (s *Store) Backend() Backend { return s.backend }

// Initialize seeds Diagnoses, Drugs, Exams and Settings exactly once when the
// corresponding key is absent. Patients, Visits and Appointments start empty.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := seedAbsent(s.backend, keyDiagnoses, func() ([]string, error) {
		return append([]string(nil), schema.PredefinedDiagnoses...), nil
	}); err != nil {
		return err
	}
	if err := seedAbsent(s.backend, keyDrugs, func() ([]schema.Drug, error) {
		return append([]schema.Drug(nil), schema.InitialDrugs...), nil
	}); err != nil {
		return err
	}
	if err := seedAbsent(s.backend, keyExams, func() ([]schema.Exam, error) {
		exams := schema.ExamCatalog()
		for i := range exams {
			exams[i].ID = schema.NewID()
		}
		return exams, nil
	}); err != nil {
		return err
	}
	if err := seedAbsent(s.backend, keySettings, func() (schema.Settings, error) {
		return schema.DefaultSettings(), nil
	}); err != nil {
		return err
	}

	s.log.Debug().Msg("store initialized")
	return nil
}

func seedAbsent[T any](b Backend, key string, seed func() (T, error)) error {
	_, ok, err := b.Get(key)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	value, err := seed()
	if err != nil {
		return err
	}
	return putValue(b, key, value)
}

// -- Patients --

// Patients lists the full registry. The slice is freshly decoded on every
// call; callers must not assume reference stability.
func (s *Store) Patients() ([]schema.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return getList[schema.Patient](s.backend, keyPatients)
}

// Patient looks up one record. A missing id is a normal empty result.
func (s *Store) Patient(id string) (schema.Patient, bool, error) {
	patients, err := s.Patients()
	if err != nil {
		return schema.Patient{}, false, err
	}
	for _, p := range patients {
		if p.ID == id {
			return p, true, nil
		}
	}
	return schema.Patient{}, false, nil
}

// SavePatient upserts by id. There is no patient delete in the public
// contract.
func (s *Store) SavePatient(p schema.Patient) error {
	err := mutateList(s, keyPatients, func(items []schema.Patient) ([]schema.Patient, bool) {
		return upsert(items, p, func(a, b schema.Patient) bool { return a.ID == b.ID }, nil), true
	})
	return err
}

// -- Visits --

// Visits lists visit records, newest first. With a non-empty patientID only
// that patient's visits are returned. Same-day visits keep insertion order.
func (s *Store) Visits(patientID string) ([]schema.Visit, error) {
	s.mu.Lock()
	all, err := getList[schema.Visit](s.backend, keyVisits)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	visits := all
	if patientID != "" {
		visits = visits[:0:0]
		for _, v := range all {
			if v.PatientID == patientID {
				visits = append(visits, v)
			}
		}
	}
	sort.SliceStable(visits, func(i, j int) bool {
		return parseWhen(visits[i].Date, "").After(parseWhen(visits[j].Date, ""))
	})
	return visits, nil
}

// Visit looks up one record by id.
func (s *Store) Visit(id string) (schema.Visit, bool, error) {
	s.mu.Lock()
	all, err := getList[schema.Visit](s.backend, keyVisits)
	s.mu.Unlock()
	if err != nil {
		return schema.Visit{}, false, err
	}
	for _, v := range all {
		if v.ID == id {
			return v, true, nil
		}
	}
	return schema.Visit{}, false, nil
}

// SaveVisit upserts by id. Visits are never deleted through the public
// contract; orphaned visits (patient gone) are tolerated.
func (s *Store) SaveVisit(v schema.Visit) error {
	return mutateList(s, keyVisits, func(items []schema.Visit) ([]schema.Visit, bool) {
		return upsert(items, v, func(a, b schema.Visit) bool { return a.ID == b.ID }, nil), true
	})
}

// -- Appointments --

// Appointments lists agenda entries ordered by (date, time) ascending, stable
// for exact ties. With a non-empty date only that day is returned.
func (s *Store) Appointments(date string) ([]schema.Appointment, error) {
	s.mu.Lock()
	all, err := getList[schema.Appointment](s.backend, keyAppointments)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	appts := all
	if date != "" {
		appts = appts[:0:0]
		for _, a := range all {
			if a.Date == date {
				appts = append(appts, a)
			}
		}
	}
	sort.SliceStable(appts, func(i, j int) bool {
		return parseWhen(appts[i].Date, appts[i].Time).Before(parseWhen(appts[j].Date, appts[j].Time))
	})
	return appts, nil
}

// Appointment looks up one record by id.
func (s *Store) Appointment(id string) (schema.Appointment, bool, error) {
	s.mu.Lock()
	all, err := getList[schema.Appointment](s.backend, keyAppointments)
	s.mu.Unlock()
	if err != nil {
		return schema.Appointment{}, false, err
	}
	for _, a := range all {
		if a.ID == id {
			return a, true, nil
		}
	}
	return schema.Appointment{}, false, nil
}

// SaveAppointment upserts by id.
func (s *Store) SaveAppointment(a schema.Appointment) error {
	return mutateList(s, keyAppointments, func(items []schema.Appointment) ([]schema.Appointment, bool) {
		return upsert(items, a, func(x, y schema.Appointment) bool { return x.ID == y.ID }, nil), true
	})
}

// DeleteAppointment removes the entry if present; deleting an unknown id is a
// no-op.
func (s *Store) DeleteAppointment(id string) error {
	return mutateList(s, keyAppointments, func(items []schema.Appointment) ([]schema.Appointment, bool) {
		return remove(items, func(a schema.Appointment) bool { return a.ID == id })
	})
}

// -- Drugs --

// Drugs lists the formulary.
func (s *Store) Drugs() ([]schema.Drug, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return getList[schema.Drug](s.backend, keyDrugs)
}

// Drug looks up one formulary entry by id.
func (s *Store) Drug(id string) (schema.Drug, bool, error) {
	drugs, err := s.Drugs()
	if err != nil {
		return schema.Drug{}, false, err
	}
	for _, d := range drugs {
		if d.ID == id {
			return d, true, nil
		}
	}
	return schema.Drug{}, false, nil
}

// SaveDrug upserts by id or, failing that, by case-insensitive name, merging
// duplicate formulary entries. When matched by name the existing id is kept
// so references stay valid.
func (s *Store) SaveDrug(d schema.Drug) error {
	same := func(a, b schema.Drug) bool {
		return a.ID == b.ID || strings.EqualFold(a.Name, b.Name)
	}
	merge := func(existing, incoming schema.Drug) schema.Drug {
		incoming.ID = existing.ID
		return incoming
	}
	return mutateList(s, keyDrugs, func(items []schema.Drug) ([]schema.Drug, bool) {
		return upsert(items, d, same, merge), true
	})
}

// DeleteDrug removes the entry if present; idempotent.
func (s *Store) DeleteDrug(id string) error {
	return mutateList(s, keyDrugs, func(items []schema.Drug) ([]schema.Drug, bool) {
		return remove(items, func(d schema.Drug) bool { return d.ID == id })
	})
}

// -- Exams --

// Exams lists the exam catalog.
func (s *Store) Exams() ([]schema.Exam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return getList[schema.Exam](s.backend, keyExams)
}

// Exam looks up one catalog entry by id.
func (s *Store) Exam(id string) (schema.Exam, bool, error) {
	exams, err := s.Exams()
	if err != nil {
		return schema.Exam{}, false, err
	}
	for _, e := range exams {
		if e.ID == id {
			return e, true, nil
		}
	}
	return schema.Exam{}, false, nil
}

// SaveExam upserts by id.
func (s *Store) SaveExam(e schema.Exam) error {
	return mutateList(s, keyExams, func(items []schema.Exam) ([]schema.Exam, bool) {
		return upsert(items, e, func(a, b schema.Exam) bool { return a.ID == b.ID }, nil), true
	})
}

// DeleteExam removes the entry if present; idempotent.
func (s *Store) DeleteExam(id string) error {
	return mutateList(s, keyExams, func(items []schema.Exam) ([]schema.Exam, bool) {
		return remove(items, func(e schema.Exam) bool { return e.ID == id })
	})
}

// -- Diagnoses --

// Diagnoses lists the free-text diagnosis labels, sentinel last.
func (s *Store) Diagnoses() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return getList[string](s.backend, keyDiagnoses)
}

// AddDiagnosis appends a new label if absent, re-sorts alphabetically and
// keeps the sentinel pinned last. A duplicate label is a no-op and fires no
// notification.
func (s *Store) AddDiagnosis(name string) error {
	return mutateList(s, keyDiagnoses, func(items []string) ([]string, bool) {
		for _, d := range items {
			if d == name {
				return items, false
			}
		}
		labels := make([]string, 0, len(items)+1)
		for _, d := range items {
			if d != schema.DiagnosisSentinel {
				labels = append(labels, d)
			}
		}
		labels = append(labels, name)
		sort.Strings(labels)
		return append(labels, schema.DiagnosisSentinel), true
	})
}

// -- Settings --

// Settings returns the singleton settings document, falling back to the
// defaults when the key has never been written.
func (s *Store) Settings() (schema.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settingsLocked()
}

func (s *Store) settingsLocked() (schema.Settings, error) {
	raw, ok, err := s.backend.Get(keySettings)
	if err != nil {
		return schema.Settings{}, err
	}
	if !ok {
		return schema.DefaultSettings(), nil
	}
	var out schema.Settings
	if err := json.Unmarshal(raw, &out); err != nil {
		return schema.Settings{}, fmt.Errorf("decode %s: %w", keySettings, err)
	}
	return out, nil
}

// SaveSettings replaces the singleton. A write that would leave the clinic
// list empty is rejected with ErrNoClinics.
func (s *Store) SaveSettings(set schema.Settings) error {
	if len(set.Clinics) == 0 {
		return ErrNoClinics
	}

	s.mu.Lock()
	if err := putValue(s.backend, keySettings, set); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.touchLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// CheckPassword compares the candidate against the stored admin passphrase.
// Deliberately coarse: a plain boolean, no lockout, no distinct failure
// reasons.
func (s *Store) CheckPassword(candidate string) bool {
	set, err := s.Settings()
	if err != nil {
		return false
	}
	return set.AdminPassword == candidate
}

// -- Bulk replace (import path) --

// Snapshot carries wholesale replacement contents for the import path. A nil
// slice (or nil Settings) leaves that collection untouched.
type Snapshot struct {
	Patients     []schema.Patient
	Visits       []schema.Visit
	Appointments []schema.Appointment
	Settings     *schema.Settings
	Drugs        []schema.Drug
	Exams        []schema.Exam
}

// ReplaceAll overwrites every collection present in the snapshot, advances
// the timestamp once and fires exactly one change notification.
func (s *Store) ReplaceAll(snap Snapshot) error {
	if snap.Settings != nil && len(snap.Settings.Clinics) == 0 {
		return ErrNoClinics
	}

	s.mu.Lock()
	write := func(key string, present bool, value any) error {
		if !present {
			return nil
		}
		return putValue(s.backend, key, value)
	}
	steps := []error{
		write(keyPatients, snap.Patients != nil, snap.Patients),
		write(keyVisits, snap.Visits != nil, snap.Visits),
		write(keyAppointments, snap.Appointments != nil, snap.Appointments),
		write(keySettings, snap.Settings != nil, snap.Settings),
		write(keyDrugs, snap.Drugs != nil, snap.Drugs),
		write(keyExams, snap.Exams != nil, snap.Exams),
	}
	for _, err := range steps {
		if err != nil {
			s.mu.Unlock()
			return err
		}
	}
	if err := s.touchLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// -- Timestamp --

// LastModified reports the time of the most recent tracked write, zero when
// nothing has been written yet.
func (s *Store) LastModified() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.backend.Get(keyLastModified)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		return time.Time{}, nil
	}
	ms, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode %s: %w", keyLastModified, err)
	}
	return time.UnixMilli(ms), nil
}

// touchLocked advances the last-modified timestamp. Strictly monotonic even
// when the wall clock does not move between writes.
func (s *Store) touchLocked() error {
	now := time.Now().UnixMilli()
	if raw, ok, err := s.backend.Get(keyLastModified); err == nil && ok {
		if prev, perr := strconv.ParseInt(string(raw), 10, 64); perr == nil && now <= prev {
			now = prev + 1
		}
	}
	return s.backend.Set(keyLastModified, []byte(strconv.FormatInt(now, 10)))
}

// -- Subscriptions --

// Subscribe registers a listener invoked (with no arguments) after every
// successful mutation across every collection. The returned function removes
// the listener; calling it more than once is safe.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// notify runs the listeners outside the store lock so a listener may read
// back from the store.
func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// -- Internals --

// mutateList loads a collection, applies fn, and when fn reports a change
// writes it back, advances the timestamp and notifies.
func mutateList[T any](s *Store, key string, fn func([]T) ([]T, bool)) error {
	s.mu.Lock()
	items, err := getList[T](s.backend, key)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	next, changed := fn(items)
	if !changed {
		s.mu.Unlock()
		return nil
	}
	if err := putValue(s.backend, key, next); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.touchLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// upsert replaces the first element matching same, or appends. merge, when
// non-nil, reconciles the existing and incoming records on replace.
func upsert[T any](items []T, rec T, same func(a, b T) bool, merge func(existing, incoming T) T) []T {
	for i := range items {
		if same(items[i], rec) {
			if merge != nil {
				rec = merge(items[i], rec)
			}
			items[i] = rec
			return items
		}
	}
	return append(items, rec)
}

// remove filters out elements matching drop, reporting whether anything was
// removed.
func remove[T any](items []T, drop func(T) bool) ([]T, bool) {
	kept := items[:0:0]
	removed := false
	for _, it := range items {
		if drop(it) {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	return kept, removed
}

func getList[T any](b Backend, key string) ([]T, error) {
	raw, ok, err := b.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return out, nil
}

func putValue(b Backend, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return b.Set(key, data)
}

// parseWhen interprets the stored date (and optional HH:MM time) as an
// instant for ordering. Unparseable input sorts as the zero time.
func parseWhen(date, clock string) time.Time {
	if clock != "" {
		if t, err := time.Parse("2006-01-02T15:04", date+"T"+clock); err == nil {
			return t
		}
	}
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t
	}
	return time.Time{}
}
