package clinic

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC)

func at(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 1504", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func setupManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(WithClock(func() time.Time { return testNow }))
	for _, p := range []Patient{
		{ID: "S1234567D", Name: "Billy", DOB: "1990-10-01", Gender: "M", Address: "124 High St", Contact: "81234567"},
		{ID: "S2345678D", Name: "James", DOB: "1980-12-31", Gender: "M", Address: "133 Main St", Contact: "81229312"},
		{ID: "S3456789D", Name: "William", DOB: "1970-08-31", Gender: "M", Address: "17 Cornelia St", Contact: "81009214"},
	} {
		require.NoError(t, m.AddPatient(p))
	}
	return m
}

func TestManager_AddPatientRejectsDuplicate(t *testing.T) {
	m := setupManager(t)

	err := m.AddPatient(Patient{ID: "s1234567d", Name: "Other"})
	assert.True(t, errors.Is(err, ErrDuplicatePatient))
	assert.Len(t, m.Patients(), 3)
}

func TestManager_PatientLookup(t *testing.T) {
	m := setupManager(t)

	p, err := m.Patient("s2345678d")
	require.NoError(t, err)
	assert.Equal(t, "James", p.Name)
	assert.NotNil(t, p.History)

	_, err = m.Patient("S0000000A")
	assert.True(t, errors.Is(err, ErrPatientNotFound))

	byName, err := m.PatientsByName("  william ")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "S3456789D", byName[0].ID)

	_, err = m.PatientsByName("Nobody")
	assert.True(t, errors.Is(err, ErrPatientNotFound))
}

func TestManager_DeletePatientCascades(t *testing.T) {
	m := setupManager(t)
	_, err := m.AddAppointment("S1234567D", at("2099-01-01 0900"), "Checkup")
	require.NoError(t, err)
	_, err = m.AddAppointment("S2345678D", at("2099-01-01 0900"), "Scan")
	require.NoError(t, err)
	_, err = m.AddPrescription("S1234567D", []string{"Fever"}, []string{"Panadol"}, "")
	require.NoError(t, err)

	removed, err := m.DeletePatient("S1234567D")
	require.NoError(t, err)
	assert.Equal(t, "Billy", removed.Name)
	assert.Len(t, m.Patients(), 2)

	appts := m.Appointments()
	require.Len(t, appts, 1)
	assert.Equal(t, "S2345678D", appts[0].PatientID)
	_, err = m.Prescription("S1234567D-1")
	assert.True(t, errors.Is(err, ErrPrescriptionNotFound))

	_, err = m.DeletePatient("S1234567D")
	assert.True(t, errors.Is(err, ErrPatientNotFound))
}

func TestManager_History(t *testing.T) {
	m := setupManager(t)

	p, err := m.StoreHistory("S1234567D", []string{"Asthma", "Flu"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Asthma", "Flu"}, p.History)

	p, err = m.EditHistory("S1234567D", "asthma", "Mild asthma")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mild asthma", "Flu"}, p.History)

	p, err = m.EditHistory("S1234567D", "flu", "Fever, cough")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mild asthma", "Fever", "cough"}, p.History)

	_, err = m.EditHistory("S1234567D", "Gout", "x")
	assert.True(t, errors.Is(err, ErrHistoryNotFound))

	_, err = m.StoreHistory("S0000000A", []string{"x"})
	assert.True(t, errors.Is(err, ErrPatientNotFound))
}

func TestManager_EditPatientLeavesNilFields(t *testing.T) {
	m := setupManager(t)
	phone := "99999999"

	p, err := m.EditPatient("S1234567D", PatientUpdate{Contact: &phone})
	require.NoError(t, err)
	assert.Equal(t, "99999999", p.Contact)
	assert.Equal(t, "Billy", p.Name)
	assert.Equal(t, "124 High St", p.Address)
}

func TestManager_AppointmentLifecycle(t *testing.T) {
	m := setupManager(t)

	a1, err := m.AddAppointment("S1234567D", at("2099-01-01 0900"), "Checkup")
	require.NoError(t, err)
	assert.Equal(t, "A1", a1.ID)

	_, err = m.AddAppointment("S1234567D", at("2099-01-01 0900"), "Again")
	assert.True(t, errors.Is(err, ErrAppointmentClash))

	_, err = m.AddAppointment("S0000000A", at("2099-01-01 1000"), "Nobody")
	assert.True(t, errors.Is(err, ErrPatientNotFound))

	a2, err := m.AddAppointment("S1234567D", at("2099-01-02 0900"), "Follow up")
	require.NoError(t, err)
	assert.Equal(t, "A2", a2.ID)

	marked, err := m.MarkAppointment("a1")
	require.NoError(t, err)
	assert.True(t, marked.Done)
	unmarked, err := m.UnmarkAppointment("A1")
	require.NoError(t, err)
	assert.False(t, unmarked.Done)

	found, err := m.FindAppointments("S1234567D")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	_, err = m.DeleteAppointment("A1")
	require.NoError(t, err)
	_, err = m.DeleteAppointment("A1")
	assert.True(t, errors.Is(err, ErrAppointmentNotFound))
	_, err = m.MarkAppointment("A9")
	assert.True(t, errors.Is(err, ErrAppointmentNotFound))

	a3, err := m.AddAppointment("S2345678D", at("2099-01-03 0900"), "Scan")
	require.NoError(t, err)
	assert.Equal(t, "A3", a3.ID, "ids are never reused")
}

func TestManager_SortAppointmentsByDate(t *testing.T) {
	m := setupManager(t)
	for _, a := range []struct{ id, when, desc string }{
		{"S1234567D", "2025-03-25 1900", "Checkup"},
		{"S2345678D", "2025-03-28 2000", "CT scan"},
		{"S3456789D", "2025-03-23 1200", "Consultation"},
	} {
		_, err := m.AddAppointment(a.id, at(a.when), a.desc)
		require.NoError(t, err)
	}

	m.SortAppointmentsByDate()
	sorted := m.Appointments()
	require.Len(t, sorted, 3)
	assert.Equal(t, "Consultation", sorted[0].Description)
	assert.Equal(t, "Checkup", sorted[1].Description)
	assert.Equal(t, "CT scan", sorted[2].Description)

	m.SortAppointmentsByID()
	sorted = m.Appointments()
	assert.Equal(t, []string{"A1", "A2", "A3"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestManager_SortByIDIsNumeric(t *testing.T) {
	m := NewManager()
	m.Restore(Snapshot{
		Patients: []Patient{{ID: "S1234567D"}},
		Appointments: []Appointment{
			{ID: "A10", PatientID: "S1234567D", DateTime: at("2099-01-01 0900")},
			{ID: "A2", PatientID: "S1234567D", DateTime: at("2099-01-02 0900")},
		},
	})

	m.SortAppointmentsByID()
	assert.Equal(t, "A2", m.Appointments()[0].ID)
}

func TestManager_Prescriptions(t *testing.T) {
	m := setupManager(t)

	rx1, err := m.AddPrescription("s1234567d", []string{"Fever"}, []string{"Panadol"}, "")
	require.NoError(t, err)
	assert.Equal(t, "S1234567D-1", rx1.ID)
	assert.Equal(t, testNow, rx1.Timestamp)

	rx2, err := m.AddPrescription("S1234567D", []string{"Cough"}, []string{"Syrup"}, "Twice daily")
	require.NoError(t, err)
	assert.Equal(t, "S1234567D-2", rx2.ID)

	list, err := m.Prescriptions("S1234567D")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	none, err := m.Prescriptions("S2345678D")
	require.NoError(t, err)
	assert.Empty(t, none)

	got, err := m.Prescription("s1234567d-2")
	require.NoError(t, err)
	assert.Equal(t, "Twice daily", got.Notes)

	_, err = m.AddPrescription("S0000000A", nil, nil, "")
	assert.True(t, errors.Is(err, ErrPatientNotFound))
}

func TestManager_SnapshotRestore(t *testing.T) {
	m := setupManager(t)
	_, err := m.AddAppointment("S1234567D", at("2099-01-01 0900"), "Checkup")
	require.NoError(t, err)

	snap := m.Snapshot()
	snap.AppointmentSeq = 0

	restored := NewManager()
	restored.Restore(snap)
	assert.Equal(t, m.Patients(), restored.Patients())

	a, err := restored.AddAppointment("S2345678D", at("2099-01-01 1000"), "Scan")
	require.NoError(t, err)
	assert.Equal(t, "A2", a.ID, "counter recovers from stored ids")
}

func TestManager_RestoreDropsDuplicatePatients(t *testing.T) {
	m := NewManager()
	m.Restore(Snapshot{Patients: []Patient{{ID: "S1234567D", Name: "First"}, {ID: "s1234567d", Name: "Second"}}})

	ps := m.Patients()
	require.Len(t, ps, 1)
	assert.Equal(t, "First", ps[0].Name)
}

func TestRecordStrings(t *testing.T) {
	p := Patient{ID: "S1234567D", Name: "Tom"}
	assert.Contains(t, p.String(), "History: None")

	a := Appointment{ID: "A1", PatientID: "S1234567D", DateTime: at("2099-01-01 0900"), Description: "Checkup", Done: true}
	assert.Equal(t, "[X] A1 | 2099-01-01 09:00 | S1234567D | Checkup", a.String())

	rx := Prescription{ID: "S1234567D-1", PatientID: "S1234567D", Timestamp: testNow, Symptoms: []string{"Fever"}, Medicines: []string{"Panadol"}}
	assert.NotContains(t, rx.String(), "Notes")
}
