// Package clinic holds the patient, appointment and prescription records of
// the console and the in-memory Manager that mutates them.
package clinic

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DisplayLayout formats appointment and prescription times for people.
const DisplayLayout = "2006-01-02 15:04"

// Errors returned by Manager. Callers match them with errors.Is.
var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrDuplicatePatient     = errors.New("patient already exists")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrAppointmentClash     = errors.New("appointment clashes with an existing one")
	ErrHistoryNotFound      = errors.New("history entry not found")
	ErrPrescriptionNotFound = errors.New("prescription not found")
)

// Patient is a registered patient. ID is the NRIC.
type Patient struct {
	ID      string
	Name    string
	DOB     string
	Gender  string
	Address string
	Contact string
	History []string
}

func (p Patient) clone() Patient {
	p.History = append([]string(nil), p.History...)
	if p.History == nil {
		p.History = []string{}
	}
	return p
}

// String renders the patient on one line.
func (p Patient) String() string {
	history := "None"
	if len(p.History) > 0 {
		history = strings.Join(p.History, ", ")
	}
	return fmt.Sprintf("NRIC: %s | Name: %s | DOB: %s | Gender: %s | Address: %s | Contact: %s | History: %s",
		p.ID, p.Name, p.DOB, p.Gender, p.Address, p.Contact, history)
}

// Appointment is a booked slot for a patient. ID has the form A<n>.
type Appointment struct {
	ID          string
	PatientID   string
	DateTime    time.Time
	Description string
	Done        bool
}

// String renders the appointment on one line with its done marker.
func (a Appointment) String() string {
	mark := " "
	if a.Done {
		mark = "X"
	}
	return fmt.Sprintf("[%s] %s | %s | %s | %s", mark, a.ID, a.DateTime.Format(DisplayLayout), a.PatientID, a.Description)
}

// Prescription is a record of symptoms and prescribed medicines. ID has the
// form <patient NRIC>-<n>.
type Prescription struct {
	ID        string
	PatientID string
	Timestamp time.Time
	Symptoms  []string
	Medicines []string
	Notes     string
}

func (p Prescription) clone() Prescription {
	p.Symptoms = append([]string(nil), p.Symptoms...)
	p.Medicines = append([]string(nil), p.Medicines...)
	return p
}

// String renders the prescription as a short multi-line block.
func (p Prescription) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Prescription %s (%s)\n", p.ID, p.Timestamp.Format(DisplayLayout))
	fmt.Fprintf(&b, "  Patient:   %s\n", p.PatientID)
	fmt.Fprintf(&b, "  Symptoms:  %s\n", strings.Join(p.Symptoms, ", "))
	fmt.Fprintf(&b, "  Medicines: %s", strings.Join(p.Medicines, ", "))
	if p.Notes != "" {
		fmt.Fprintf(&b, "\n  Notes:     %s", p.Notes)
	}
	return b.String()
}

// PatientUpdate lists the fields EditPatient should change. Nil means keep.
type PatientUpdate struct {
	Name    *string
	DOB     *string
	Gender  *string
	Address *string
	Contact *string
}

// Snapshot is the full state of a Manager, used for persistence.
type Snapshot struct {
	Patients       []Patient
	Appointments   []Appointment
	Prescriptions  []Prescription
	AppointmentSeq int
}
