package clinic

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// appointmentNumber returns n for an id of the form A<n>, or 0.
func appointmentNumber(id string) int {
	id = key(id)
	if !strings.HasPrefix(id, "A") {
		return 0
	}
	n, err := strconv.Atoi(id[1:])
	if err != nil {
		return 0
	}
	return n
}

func (m *Manager) appointmentIndex(id string) int {
	k := key(id)
	for i := range m.appointments {
		if m.appointments[i].ID == k {
			return i
		}
	}
	return -1
}

// AddAppointment books a slot for an existing patient and assigns the next
// A<n> id. A patient cannot hold two appointments at the same time.
func (m *Manager) AddAppointment(patientID string, at time.Time, description string) (Appointment, error) {
	pid := key(patientID)
	if m.patientIndex(pid) < 0 {
		return Appointment{}, fmt.Errorf("%w: %s", ErrPatientNotFound, pid)
	}
	for _, a := range m.appointments {
		if a.PatientID == pid && a.DateTime.Equal(at) {
			return Appointment{}, fmt.Errorf("%w: %s at %s", ErrAppointmentClash, a.ID, at.Format(DisplayLayout))
		}
	}

	m.appointmentSeq++
	appt := Appointment{
		ID:          "A" + strconv.Itoa(m.appointmentSeq),
		PatientID:   pid,
		DateTime:    at,
		Description: description,
	}
	m.appointments = append(m.appointments, appt)
	return appt, nil
}

// DeleteAppointment removes the appointment with the given id.
func (m *Manager) DeleteAppointment(id string) (Appointment, error) {
	i := m.appointmentIndex(id)
	if i < 0 {
		return Appointment{}, fmt.Errorf("%w: %s", ErrAppointmentNotFound, key(id))
	}
	removed := m.appointments[i]
	m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
	return removed, nil
}

// MarkAppointment sets the done flag of an appointment.
func (m *Manager) MarkAppointment(id string) (Appointment, error) {
	return m.setDone(id, true)
}

// UnmarkAppointment clears the done flag of an appointment.
func (m *Manager) UnmarkAppointment(id string) (Appointment, error) {
	return m.setDone(id, false)
}

func (m *Manager) setDone(id string, done bool) (Appointment, error) {
	i := m.appointmentIndex(id)
	if i < 0 {
		return Appointment{}, fmt.Errorf("%w: %s", ErrAppointmentNotFound, key(id))
	}
	m.appointments[i].Done = done
	return m.appointments[i], nil
}

// Appointments returns all appointments in their current order.
func (m *Manager) Appointments() []Appointment {
	return append([]Appointment(nil), m.appointments...)
}

// FindAppointments returns the appointments of one patient.
func (m *Manager) FindAppointments(patientID string) ([]Appointment, error) {
	pid := key(patientID)
	if m.patientIndex(pid) < 0 {
		return nil, fmt.Errorf("%w: %s", ErrPatientNotFound, pid)
	}
	var out []Appointment
	for _, a := range m.appointments {
		if a.PatientID == pid {
			out = append(out, a)
		}
	}
	return out, nil
}

// SortAppointmentsByDate orders appointments by date-time, earliest first.
func (m *Manager) SortAppointmentsByDate() {
	sort.SliceStable(m.appointments, func(i, j int) bool {
		return m.appointments[i].DateTime.Before(m.appointments[j].DateTime)
	})
}

// SortAppointmentsByID orders appointments by their numeric id.
func (m *Manager) SortAppointmentsByID() {
	sort.SliceStable(m.appointments, func(i, j int) bool {
		return appointmentNumber(m.appointments[i].ID) < appointmentNumber(m.appointments[j].ID)
	})
}
