package clinic

import (
	"fmt"
	"strconv"
	"strings"
)

// prescriptionNumber returns n for an id of the form <patient>-<n>, or 0.
func prescriptionNumber(id string) int {
	i := strings.LastIndex(id, "-")
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil {
		return 0
	}
	return n
}

// AddPrescription records a prescription for an existing patient. Ids are
// numbered per patient.
func (m *Manager) AddPrescription(patientID string, symptoms, medicines []string, notes string) (Prescription, error) {
	pid := key(patientID)
	if m.patientIndex(pid) < 0 {
		return Prescription{}, fmt.Errorf("%w: %s", ErrPatientNotFound, pid)
	}

	next := 1
	for _, p := range m.prescriptions {
		if p.PatientID == pid {
			if n := prescriptionNumber(p.ID); n >= next {
				next = n + 1
			}
		}
	}

	rx := Prescription{
		ID:        fmt.Sprintf("%s-%d", pid, next),
		PatientID: pid,
		Timestamp: m.now(),
		Symptoms:  symptoms,
		Medicines: medicines,
		Notes:     notes,
	}.clone()
	m.prescriptions = append(m.prescriptions, rx)
	return rx.clone(), nil
}

// Prescriptions returns the prescriptions of one patient, oldest first.
func (m *Manager) Prescriptions(patientID string) ([]Prescription, error) {
	pid := key(patientID)
	if m.patientIndex(pid) < 0 {
		return nil, fmt.Errorf("%w: %s", ErrPatientNotFound, pid)
	}
	var out []Prescription
	for _, p := range m.prescriptions {
		if p.PatientID == pid {
			out = append(out, p.clone())
		}
	}
	return out, nil
}

// Prescription returns the prescription with the given id.
func (m *Manager) Prescription(id string) (Prescription, error) {
	k := key(id)
	for _, p := range m.prescriptions {
		if p.ID == k {
			return p.clone(), nil
		}
	}
	return Prescription{}, fmt.Errorf("%w: %s", ErrPrescriptionNotFound, k)
}

func (m *Manager) allPrescriptions() []Prescription {
	out := make([]Prescription, 0, len(m.prescriptions))
	for _, p := range m.prescriptions {
		out = append(out, p.clone())
	}
	return out
}
