package clinic

import (
	"fmt"
	"strings"
	"time"
)

// Manager keeps every clinic record in memory. It is used from the single
// interactive loop and is not safe for concurrent use.
type Manager struct {
	patients       []Patient
	appointments   []Appointment
	prescriptions  []Prescription
	appointmentSeq int
	now            func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the clock used to timestamp prescriptions.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager creates an empty Manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func key(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Restore replaces the manager state with s. Duplicate patient ids keep the
// first record. The appointment counter never goes below the largest id seen.
func (m *Manager) Restore(s Snapshot) {
	m.patients = m.patients[:0]
	seen := make(map[string]bool, len(s.Patients))
	for _, p := range s.Patients {
		k := key(p.ID)
		if seen[k] {
			continue
		}
		seen[k] = true
		p.ID = k
		m.patients = append(m.patients, p.clone())
	}

	m.appointments = append([]Appointment(nil), s.Appointments...)
	m.appointmentSeq = s.AppointmentSeq
	for _, a := range m.appointments {
		if n := appointmentNumber(a.ID); n > m.appointmentSeq {
			m.appointmentSeq = n
		}
	}

	m.prescriptions = m.prescriptions[:0]
	for _, p := range s.Prescriptions {
		m.prescriptions = append(m.prescriptions, p.clone())
	}
}

// Snapshot returns a copy of the manager state.
func (m *Manager) Snapshot() Snapshot {
	return Snapshot{
		Patients:       m.Patients(),
		Appointments:   m.Appointments(),
		Prescriptions:  m.allPrescriptions(),
		AppointmentSeq: m.appointmentSeq,
	}
}

func (m *Manager) patientIndex(id string) int {
	k := key(id)
	for i := range m.patients {
		if m.patients[i].ID == k {
			return i
		}
	}
	return -1
}

// AddPatient registers p. The NRIC must not already be in use.
func (m *Manager) AddPatient(p Patient) error {
	p.ID = key(p.ID)
	if m.patientIndex(p.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicatePatient, p.ID)
	}
	m.patients = append(m.patients, p.clone())
	return nil
}

// DeletePatient removes a patient together with their appointments and
// prescriptions.
func (m *Manager) DeletePatient(id string) (Patient, error) {
	i := m.patientIndex(id)
	if i < 0 {
		return Patient{}, fmt.Errorf("%w: %s", ErrPatientNotFound, key(id))
	}
	removed := m.patients[i]
	m.patients = append(m.patients[:i], m.patients[i+1:]...)

	kept := m.appointments[:0]
	for _, a := range m.appointments {
		if a.PatientID != removed.ID {
			kept = append(kept, a)
		}
	}
	m.appointments = kept

	keptRx := m.prescriptions[:0]
	for _, p := range m.prescriptions {
		if p.PatientID != removed.ID {
			keptRx = append(keptRx, p)
		}
	}
	m.prescriptions = keptRx
	return removed, nil
}

// Patient returns the patient with the given NRIC.
func (m *Manager) Patient(id string) (Patient, error) {
	i := m.patientIndex(id)
	if i < 0 {
		return Patient{}, fmt.Errorf("%w: %s", ErrPatientNotFound, key(id))
	}
	return m.patients[i].clone(), nil
}

// Patients returns all patients in registration order.
func (m *Manager) Patients() []Patient {
	out := make([]Patient, 0, len(m.patients))
	for _, p := range m.patients {
		out = append(out, p.clone())
	}
	return out
}

// PatientsByName returns the patients whose name equals name, ignoring case.
func (m *Manager) PatientsByName(name string) ([]Patient, error) {
	var out []Patient
	for _, p := range m.patients {
		if strings.EqualFold(strings.TrimSpace(p.Name), strings.TrimSpace(name)) {
			out = append(out, p.clone())
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPatientNotFound, name)
	}
	return out, nil
}

// StoreHistory appends entries to the patient's medical history.
func (m *Manager) StoreHistory(id string, entries []string) (Patient, error) {
	i := m.patientIndex(id)
	if i < 0 {
		return Patient{}, fmt.Errorf("%w: %s", ErrPatientNotFound, key(id))
	}
	m.patients[i].History = append(m.patients[i].History, entries...)
	return m.patients[i].clone(), nil
}

// EditPatient applies the non-nil fields of u.
func (m *Manager) EditPatient(id string, u PatientUpdate) (Patient, error) {
	i := m.patientIndex(id)
	if i < 0 {
		return Patient{}, fmt.Errorf("%w: %s", ErrPatientNotFound, key(id))
	}
	p := &m.patients[i]
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.DOB != nil {
		p.DOB = *u.DOB
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.Contact != nil {
		p.Contact = *u.Contact
	}
	return p.clone(), nil
}

// EditHistory replaces the first history entry equal to oldText (ignoring
// case) with newText. A comma-separated newText becomes several entries at
// that position, matching how store-history splits its input.
func (m *Manager) EditHistory(id, oldText, newText string) (Patient, error) {
	i := m.patientIndex(id)
	if i < 0 {
		return Patient{}, fmt.Errorf("%w: %s", ErrPatientNotFound, key(id))
	}
	history := m.patients[i].History
	for j, entry := range history {
		if strings.EqualFold(strings.TrimSpace(entry), strings.TrimSpace(oldText)) {
			spliced := make([]string, 0, len(history)+1)
			spliced = append(spliced, history[:j]...)
			spliced = append(spliced, splitEntries(newText)...)
			spliced = append(spliced, history[j+1:]...)
			m.patients[i].History = spliced
			return m.patients[i].clone(), nil
		}
	}
	return Patient{}, fmt.Errorf("%w: %q", ErrHistoryNotFound, oldText)
}

// splitEntries splits text on commas, dropping blank parts.
func splitEntries(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
