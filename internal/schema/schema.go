// Package schema defines the record shapes stored by the clinic data store and
// the seed data loaded on first run. It is pure data: no behavior beyond
// constructors for defaults.
package schema

import (
	"encoding/json"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque record identifier.
func NewID() string {
	return uuid.New().String()
}

// Address is a postal address attached to a patient record.
type Address struct {
	Street      string `json:"street"`
	CivicNumber string `json:"civicNumber,omitempty"`
	City        string `json:"city"`
	Zip         string `json:"zip"`
	Hamlet      string `json:"hamlet,omitempty"`
	Province    string `json:"province"`
	Nation      string `json:"nation,omitempty"`
}

// Patient is a registry entry. TaxCode is expected to be unique but the store
// does not enforce it.
type Patient struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	TaxCode         string   `json:"taxCode"`
	BirthPlace      string   `json:"birthPlace"`
	BirthDate       string   `json:"birthDate"`
	Gender          string   `json:"gender"`
	Referrer        string   `json:"referrer,omitempty"`
	Emails          []string `json:"emails"`
	Phones          []string `json:"phones"`
	Residence       Address  `json:"residence"`
	Domicile        Address  `json:"domicile"`
	AccessDiagnosis string   `json:"accessDiagnosis"`
	CreatedAt       string   `json:"createdAt"`
}

// TherapyEntry is one prescribed drug line inside a visit.
type TherapyEntry struct {
	Drug     string `json:"drug"`
	Posology string `json:"posology"`
	Duration string `json:"duration"`
}

// ExamResult is one recorded exam value inside a visit. It snapshots the exam
// name and group so the visit stays readable if the catalog entry changes.
type ExamResult struct {
	ExamID   string `json:"examId"`
	ExamName string `json:"examName"`
	Group    string `json:"group"`
	Value    string `json:"value"`
	Date     string `json:"date"`
}

// Visit is an encounter record. It belongs to exactly one patient; deleting a
// patient does not cascade here.
type Visit struct {
	ID             string          `json:"id"`
	PatientID      string          `json:"patientId"`
	Date           string          `json:"date"`
	VisitType      string          `json:"visitType"`
	Reason         string          `json:"reason,omitempty"`
	Diagnosis      string          `json:"diagnosis,omitempty"`
	Therapy        []TherapyEntry  `json:"therapy"`
	DoctorNote1    string          `json:"doctorNote1"`
	DoctorNote2    string          `json:"doctorNote2"`
	DoctorNote3    string          `json:"doctorNote3"`
	ConclusionNote string          `json:"conclusionNote"`
	Exams          []ExamResult    `json:"exams"`
	CustomValues   json.RawMessage `json:"customValues,omitempty"`
	PaymentAmount  float64         `json:"paymentAmount,omitempty"`
	IsPaid         bool            `json:"isPaid,omitempty"`
}

// Appointment is an agenda entry. PatientID is empty for manually entered
// appointments; the name and phone are snapshots taken at booking time.
type Appointment struct {
	ID           string `json:"id"`
	PatientID    string `json:"patientId"`
	PatientName  string `json:"patientName"`
	PatientPhone string `json:"patientPhone,omitempty"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Duration     int    `json:"duration"`
	Notes        string `json:"notes,omitempty"`
	IsNewPatient bool   `json:"isNewPatient"`
	ClinicID     string `json:"clinicId,omitempty"`
}

// Drug is a formulary entry. Name is intended unique case-insensitively; the
// store merges on it when upserting.
type Drug struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DefaultPosology string `json:"defaultPosology"`
	DefaultDuration string `json:"defaultDuration"`
}

// Exam is a catalog entry describing one orderable test.
type Exam struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Group    string  `json:"group"`
	Subgroup *string `json:"subgroup"`
	TestType string  `json:"test_type"`
	Target   string  `json:"target"`
	Method   *string `json:"method"`
}

// WorkingDay is one weekday slot of the clinic schedule. Day is 0-6, Sunday
// first.
type WorkingDay struct {
	Day       int    `json:"day"`
	IsEnabled bool   `json:"isEnabled"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// Clinic is one bookable structure/location.
type Clinic struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Color   string `json:"color"`
}

// ClinicDetails holds letterhead data used on printouts.
type ClinicDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	VAT     string `json:"piva"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Settings is the singleton configuration document. Clinics must always keep
// at least one entry.
type Settings struct {
	AdminPassword  string            `json:"adminPasswordHash"`
	CustomFields   []json.RawMessage `json:"customFields"`
	Schedule       []WorkingDay      `json:"schedule"`
	Clinics        []Clinic          `json:"clinics"`
	KnownDiagnoses []string          `json:"knownDiagnoses"`
	PriceList      []json.RawMessage `json:"priceList"`
	ClinicDetails  ClinicDetails     `json:"clinicDetails"`
}
