package store

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/schema"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(NewMemoryBackend(), zerolog.Nop())
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return s
}

func testPatient(id, lastName string) schema.Patient {
	return schema.Patient{
		ID:        id,
		Title:     "Sig.",
		FirstName: "Mario",
		LastName:  lastName,
		TaxCode:   "RSSMRA80A01H501U",
		Gender:    "M",
		Emails:    []string{"", ""},
		Phones:    []string{"", ""},
		CreatedAt: "2024-01-01T00:00:00Z",
	}
}

// ---------------------------------------------------------------------------
// Initialize
// ---------------------------------------------------------------------------

func TestInitializeSeedsOnce(t *testing.T) {
	s := newTestStore(t)

	drugs, err := s.Drugs()
	if err != nil {
		t.Fatalf("Drugs: %v", err)
	}
	if len(drugs) != len(schema.InitialDrugs) {
		t.Fatalf("seeded drugs = %d, want %d", len(drugs), len(schema.InitialDrugs))
	}

	exams, err := s.Exams()
	if err != nil {
		t.Fatalf("Exams: %v", err)
	}
	if len(exams) != len(schema.ExamCatalog()) {
		t.Fatalf("seeded exams = %d, want %d", len(exams), len(schema.ExamCatalog()))
	}
	for _, e := range exams {
		if e.ID == "" {
			t.Fatalf("seeded exam %q has no id", e.Name)
		}
	}

	// A second Initialize must not clobber existing data.
	if err := s.SaveDrug(schema.Drug{ID: schema.NewID(), Name: "Test Drug"}); err != nil {
		t.Fatalf("SaveDrug: %v", err)
	}
	if err := s.Initialize(); err != nil {
		t.Fatalf("second Initialize: %v", err)
	}
	drugs, _ = s.Drugs()
	if len(drugs) != len(schema.InitialDrugs)+1 {
		t.Fatalf("drugs after re-init = %d, want %d", len(drugs), len(schema.InitialDrugs)+1)
	}
}

// ---------------------------------------------------------------------------
// Patients
// ---------------------------------------------------------------------------

func TestSavePatientUpsertIdempotence(t *testing.T) {
	s := newTestStore(t)
	p := testPatient("p1", "Rossi")

	if err := s.SavePatient(p); err != nil {
		t.Fatalf("SavePatient: %v", err)
	}
	if err := s.SavePatient(p); err != nil {
		t.Fatalf("SavePatient (repeat): %v", err)
	}

	patients, err := s.Patients()
	if err != nil {
		t.Fatalf("Patients: %v", err)
	}
	if len(patients) != 1 {
		t.Fatalf("patients = %d, want 1", len(patients))
	}

	// Updating the same id replaces in place.
	p.LastName = "Bianchi"
	if err := s.SavePatient(p); err != nil {
		t.Fatalf("SavePatient (update): %v", err)
	}
	patients, _ = s.Patients()
	if len(patients) != 1 || patients[0].LastName != "Bianchi" {
		t.Fatalf("update did not replace in place: %+v", patients)
	}
}

func TestPatientNotFoundIsNotAnError(t *testing.T) {
	s := newTestStore(t)

	_, found, err := s.Patient("missing")
	if err != nil {
		t.Fatalf("Patient: %v", err)
	}
	if found {
		t.Fatal("expected not found")
	}
}

// ---------------------------------------------------------------------------
// Visits
// ---------------------------------------------------------------------------

func TestVisitsSortedNewestFirst(t *testing.T) {
	s := newTestStore(t)

	old := schema.Visit{ID: "v1", PatientID: "p1", Date: "2023-01-01"}
	recent := schema.Visit{ID: "v2", PatientID: "p1", Date: "2024-06-15"}
	other := schema.Visit{ID: "v3", PatientID: "p2", Date: "2024-12-01"}
	for _, v := range []schema.Visit{old, recent, other} {
		if err := s.SaveVisit(v); err != nil {
			t.Fatalf("SaveVisit: %v", err)
		}
	}

	visits, err := s.Visits("p1")
	if err != nil {
		t.Fatalf("Visits: %v", err)
	}
	if len(visits) != 2 {
		t.Fatalf("visits for p1 = %d, want 2", len(visits))
	}
	if visits[0].ID != "v2" || visits[1].ID != "v1" {
		t.Fatalf("wrong order: %s, %s", visits[0].ID, visits[1].ID)
	}
}

func TestVisitsSameDayKeepInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := s.SaveVisit(schema.Visit{ID: id, PatientID: "p1", Date: "2024-05-01"}); err != nil {
			t.Fatalf("SaveVisit: %v", err)
		}
	}

	visits, err := s.Visits("p1")
	if err != nil {
		t.Fatalf("Visits: %v", err)
	}
	got := []string{visits[0].ID, visits[1].ID, visits[2].ID}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// Appointments
// ---------------------------------------------------------------------------

func TestAppointmentsSortedByDateTime(t *testing.T) {
	s := newTestStore(t)

	late := schema.Appointment{ID: "a1", PatientName: "X", Date: "2024-05-01", Time: "09:00", Duration: 30}
	early := schema.Appointment{ID: "a2", PatientName: "Y", Date: "2024-05-01", Time: "08:00", Duration: 30}
	if err := s.SaveAppointment(late); err != nil {
		t.Fatalf("SaveAppointment: %v", err)
	}
	if err := s.SaveAppointment(early); err != nil {
		t.Fatalf("SaveAppointment: %v", err)
	}

	appts, err := s.Appointments("")
	if err != nil {
		t.Fatalf("Appointments: %v", err)
	}
	if appts[0].ID != "a2" {
		t.Fatalf("first appointment = %s, want a2 (08:00)", appts[0].ID)
	}
}

func TestAppointmentsTiesKeepInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	for _, id := range []string{"first", "second"} {
		a := schema.Appointment{ID: id, Date: "2024-05-01", Time: "08:00", Duration: 15}
		if err := s.SaveAppointment(a); err != nil {
			t.Fatalf("SaveAppointment: %v", err)
		}
	}

	appts, _ := s.Appointments("2024-05-01")
	if appts[0].ID != "first" || appts[1].ID != "second" {
		t.Fatalf("tie order = %s, %s", appts[0].ID, appts[1].ID)
	}
}

func TestAppointmentsDateFilter(t *testing.T) {
	s := newTestStore(t)

	s.SaveAppointment(schema.Appointment{ID: "a1", Date: "2024-05-01", Time: "09:00"})
	s.SaveAppointment(schema.Appointment{ID: "a2", Date: "2024-05-02", Time: "09:00"})

	appts, err := s.Appointments("2024-05-02")
	if err != nil {
		t.Fatalf("Appointments: %v", err)
	}
	if len(appts) != 1 || appts[0].ID != "a2" {
		t.Fatalf("filtered = %+v, want only a2", appts)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	notified := 0
	unsub := s.Subscribe(func() { notified++ })
	defer unsub()

	if err := s.DeleteAppointment("ghost"); err != nil {
		t.Fatalf("DeleteAppointment(ghost): %v", err)
	}
	if err := s.DeleteDrug("ghost"); err != nil {
		t.Fatalf("DeleteDrug(ghost): %v", err)
	}
	if err := s.DeleteExam("ghost"); err != nil {
		t.Fatalf("DeleteExam(ghost): %v", err)
	}
	if notified != 0 {
		t.Fatalf("no-op deletes fired %d notifications", notified)
	}

	s.SaveAppointment(schema.Appointment{ID: "a1", Date: "2024-05-01", Time: "09:00"})
	if err := s.DeleteAppointment("a1"); err != nil {
		t.Fatalf("DeleteAppointment: %v", err)
	}
	appts, _ := s.Appointments("")
	if len(appts) != 0 {
		t.Fatalf("appointment not removed: %+v", appts)
	}
}

// ---------------------------------------------------------------------------
// Drugs
// ---------------------------------------------------------------------------

func TestSaveDrugMergesByName(t *testing.T) {
	s := newTestStore(t)

	before, _ := s.Drugs()
	updated := schema.Drug{
		ID:              schema.NewID(),
		Name:            "PRIVIGEN 10%", // case differs from the seeded entry
		DefaultPosology: "0.6g/kg ogni 28gg",
		DefaultDuration: "Cronica",
	}
	if err := s.SaveDrug(updated); err != nil {
		t.Fatalf("SaveDrug: %v", err)
	}

	after, _ := s.Drugs()
	if len(after) != len(before) {
		t.Fatalf("drugs = %d, want %d (merge, not duplicate)", len(after), len(before))
	}

	var merged schema.Drug
	for _, d := range after {
		if d.DefaultPosology == "0.6g/kg ogni 28gg" {
			merged = d
		}
	}
	if merged.ID != "1" {
		t.Fatalf("merged drug id = %q, want the existing id 1", merged.ID)
	}
}

// ---------------------------------------------------------------------------
// Diagnoses
// ---------------------------------------------------------------------------

func TestAddDiagnosisKeepsSentinelLast(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddDiagnosis("Nuova Patologia"); err != nil {
		t.Fatalf("AddDiagnosis: %v", err)
	}

	labels, err := s.Diagnoses()
	if err != nil {
		t.Fatalf("Diagnoses: %v", err)
	}
	if labels[len(labels)-1] != schema.DiagnosisSentinel {
		t.Fatalf("last label = %q, want sentinel", labels[len(labels)-1])
	}
	foundAt := -1
	for i, l := range labels {
		if l == "Nuova Patologia" {
			foundAt = i
		}
	}
	if foundAt < 0 || foundAt == len(labels)-1 {
		t.Fatalf("new label position = %d in %v", foundAt, labels)
	}
}

func TestAddDiagnosisDuplicateIsNoOp(t *testing.T) {
	s := newTestStore(t)
	s.AddDiagnosis("Nuova Patologia")

	before, _ := s.Diagnoses()
	notified := 0
	unsub := s.Subscribe(func() { notified++ })
	defer unsub()

	if err := s.AddDiagnosis("Nuova Patologia"); err != nil {
		t.Fatalf("AddDiagnosis (dup): %v", err)
	}
	after, _ := s.Diagnoses()
	if len(after) != len(before) {
		t.Fatalf("labels = %d, want %d", len(after), len(before))
	}
	if notified != 0 {
		t.Fatalf("duplicate add fired %d notifications", notified)
	}
}

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

func TestSaveSettingsRejectsEmptyClinics(t *testing.T) {
	s := newTestStore(t)

	set, err := s.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	set.Clinics = nil
	if err := s.SaveSettings(set); err != ErrNoClinics {
		t.Fatalf("SaveSettings(no clinics) = %v, want ErrNoClinics", err)
	}

	set, _ = s.Settings()
	if len(set.Clinics) < 1 {
		t.Fatalf("clinic list dropped below 1: %+v", set.Clinics)
	}
}

func TestCheckPassword(t *testing.T) {
	s := newTestStore(t)

	if !s.CheckPassword("admin") {
		t.Fatal("default passphrase rejected")
	}
	if s.CheckPassword("wrong") {
		t.Fatal("wrong passphrase accepted")
	}

	set, _ := s.Settings()
	set.AdminPassword = "s3greto"
	if err := s.SaveSettings(set); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	if !s.CheckPassword("s3greto") {
		t.Fatal("updated passphrase rejected")
	}
}

// ---------------------------------------------------------------------------
// Timestamp
// ---------------------------------------------------------------------------

func TestLastModifiedAdvancesOnEveryWrite(t *testing.T) {
	s := newTestStore(t)

	t0, err := s.LastModified()
	if err != nil {
		t.Fatalf("LastModified: %v", err)
	}

	s.SavePatient(testPatient("p1", "Rossi"))
	t1, _ := s.LastModified()
	if !t1.After(t0) {
		t.Fatalf("patient write did not advance timestamp: %v -> %v", t0, t1)
	}

	// Formulary writes advance it too (uniform policy).
	s.SaveDrug(schema.Drug{ID: schema.NewID(), Name: "Nuovo Farmaco"})
	t2, _ := s.LastModified()
	if !t2.After(t1) {
		t.Fatalf("drug write did not advance timestamp: %v -> %v", t1, t2)
	}
}

func TestLastModifiedStrictlyMonotonic(t *testing.T) {
	s := newTestStore(t)

	var stamps []time.Time
	for i := 0; i < 5; i++ {
		s.SaveVisit(schema.Visit{ID: schema.NewID(), PatientID: "p1", Date: "2024-01-01"})
		ts, _ := s.LastModified()
		stamps = append(stamps, ts)
	}
	for i := 1; i < len(stamps); i++ {
		if !stamps[i].After(stamps[i-1]) {
			t.Fatalf("timestamp not strictly increasing at %d: %v", i, stamps)
		}
	}
}

// ---------------------------------------------------------------------------
// Subscriptions
// ---------------------------------------------------------------------------

func TestSubscribeAndUnsubscribe(t *testing.T) {
	s := newTestStore(t)

	count := 0
	unsub := s.Subscribe(func() { count++ })

	s.SavePatient(testPatient("p1", "Rossi"))
	s.SaveAppointment(schema.Appointment{ID: "a1", Date: "2024-05-01", Time: "09:00"})
	if count != 2 {
		t.Fatalf("notifications = %d, want 2", count)
	}

	unsub()
	unsub() // second call is a safe no-op

	s.SavePatient(testPatient("p2", "Verdi"))
	if count != 2 {
		t.Fatalf("unsubscribed listener still notified: %d", count)
	}
}

func TestListenerCanReadBack(t *testing.T) {
	s := newTestStore(t)

	var seen int
	unsub := s.Subscribe(func() {
		patients, err := s.Patients()
		if err != nil {
			t.Errorf("read from listener: %v", err)
		}
		seen = len(patients)
	})
	defer unsub()

	s.SavePatient(testPatient("p1", "Rossi"))
	if seen != 1 {
		t.Fatalf("listener saw %d patients, want 1", seen)
	}
}

// ---------------------------------------------------------------------------
// Failure semantics
// ---------------------------------------------------------------------------

func TestCorruptPayloadPropagates(t *testing.T) {
	backend := NewMemoryBackend()
	s := New(backend, zerolog.Nop())
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	backend.Set(keyPatients, []byte("{definitely not json"))
	if _, err := s.Patients(); err == nil {
		t.Fatal("expected error from corrupt payload")
	}
}
