package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicshell/internal/clinic"
)

func TestStore_LoadMissingDirIsEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does-not-exist"))

	snap, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Patients)
	assert.Empty(t, snap.Appointments)
	assert.Empty(t, snap.Prescriptions)
	assert.Zero(t, snap.AppointmentSeq)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s := New(dir)

	in := clinic.Snapshot{
		Patients: []clinic.Patient{
			{ID: "S1234567D", Name: "Tom", DOB: "1990-01-01", Gender: "M", Address: "Blk 1", Contact: "81234567", History: []string{"Asthma"}},
			{ID: "S2345678D", Name: "Amy", DOB: "1992-02-02", Gender: "F", Address: "Blk 2", Contact: "81111111", History: []string{}},
		},
		Appointments: []clinic.Appointment{
			{ID: "A4", PatientID: "S1234567D", DateTime: time.Date(2099, 1, 1, 9, 0, 0, 0, time.Local), Description: "Checkup", Done: true},
		},
		Prescriptions: []clinic.Prescription{
			{ID: "S1234567D-1", PatientID: "S1234567D", Timestamp: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
				Symptoms: []string{"Fever"}, Medicines: []string{"Panadol", "Rest"}, Notes: ""},
		},
		AppointmentSeq: 4,
	}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, in.Patients, out.Patients)
	assert.Equal(t, 4, out.AppointmentSeq)
	require.Len(t, out.Appointments, 1)
	assert.Equal(t, "A4", out.Appointments[0].ID)
	assert.True(t, out.Appointments[0].Done)
	require.Len(t, out.Prescriptions, 1)
	assert.Equal(t, []string{"Panadol", "Rest"}, out.Prescriptions[0].Medicines)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "no temp files left behind")
}

func TestStore_EditedHistorySurvivesReload(t *testing.T) {
	s := New(t.TempDir())
	m := clinic.NewManager()
	require.NoError(t, m.AddPatient(clinic.Patient{ID: "S1234567D", Name: "Tom", DOB: "1990-01-01", Gender: "M", Address: "Blk 1", Contact: "81234567"}))
	_, err := m.StoreHistory("S1234567D", []string{"Asthma", "Flu"})
	require.NoError(t, err)

	before, err := m.EditHistory("S1234567D", "Asthma", "Asthma, mild")
	require.NoError(t, err)
	require.NoError(t, s.Save(m.Snapshot()))

	out, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out.Patients, 1)
	assert.Equal(t, before.History, out.Patients[0].History)
	assert.Equal(t, []string{"Asthma", "mild", "Flu"}, out.Patients[0].History)
}

func TestStore_AppointmentDescriptionKeepsPipes(t *testing.T) {
	s := New(t.TempDir())
	in := clinic.Snapshot{
		Patients: []clinic.Patient{{ID: "S1234567D", Name: "Tom", History: []string{}}},
		Appointments: []clinic.Appointment{
			{ID: "A1", PatientID: "S1234567D", DateTime: time.Date(2099, 1, 1, 9, 0, 0, 0, time.Local), Description: "Checkup | follow up"},
		},
		AppointmentSeq: 1,
	}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out.Appointments, 1)
	assert.Equal(t, "Checkup | follow up", out.Appointments[0].Description)
}

func TestStore_LoadSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, PatientFile), []byte(
		"S1234567D|Tom|1990-01-01|M|Blk 1|81234567\n"+
			"broken line\n"+
			"\n"+
			"S2345678D|Amy|1992-02-02|F|Blk 2|81111111|Flu, Cough\r\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, AppointmentFile), []byte(
		"countId:7\n"+
			"1|false|S1234567D|2099-01-01 0900|Checkup\n"+
			"2|false|S1234567D|not a date|Checkup\n"), 0o600))

	snap, err := New(dir).Load()
	require.NoError(t, err)
	require.Len(t, snap.Patients, 2)
	assert.Equal(t, []string{"Flu", "Cough"}, snap.Patients[1].History)
	require.Len(t, snap.Appointments, 1)
	assert.Equal(t, "A1", snap.Appointments[0].ID)
	assert.Equal(t, 7, snap.AppointmentSeq)
}

func TestStore_SaveWritesCounterFirst(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, New(dir).Save(clinic.Snapshot{AppointmentSeq: 3}))

	data, err := os.ReadFile(filepath.Join(dir, AppointmentFile))
	require.NoError(t, err)
	assert.Equal(t, "countId:3\n", string(data))
	assert.Equal(t, dir, New(dir).Dir())
}
