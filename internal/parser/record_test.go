package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicshell/internal/clinic"
)

func TestDecodePatient(t *testing.T) {
	p, ok := DecodePatient("S1234567D|Billy|1990-10-01|M|124 High St|81234567")
	require.True(t, ok)
	assert.Equal(t, clinic.Patient{
		ID: "S1234567D", Name: "Billy", DOB: "1990-10-01", Gender: "M",
		Address: "124 High St", Contact: "81234567", History: []string{},
	}, p)

	p, ok = DecodePatient("S1234567D|Billy|1990-10-01|M|124 High St|81234567|Asthma, Diabetes")
	require.True(t, ok)
	assert.Equal(t, []string{"Asthma", "Diabetes"}, p.History)

	p, ok = DecodePatient("S1234567D|Billy|1990-10-01|M|124 High St|81234567|")
	require.True(t, ok)
	assert.Empty(t, p.History)
}

func TestDecodePatient_Malformed(t *testing.T) {
	for _, line := range []string{
		"",
		"S1234567D|Billy|1990-10-01|M|124 High St",
		"|Billy|1990-10-01|M|124 High St|81234567",
	} {
		_, ok := DecodePatient(line)
		assert.False(t, ok, "line %q", line)
	}
}

func TestPatientRoundTrip(t *testing.T) {
	in := clinic.Patient{
		ID: "S1234567D", Name: "Tom", DOB: "1990-01-01", Gender: "M",
		Address: "Blk 1", Contact: "81234567", History: []string{"Asthma", "Flu"},
	}
	out, ok := DecodePatient(EncodePatient(in))
	require.True(t, ok)
	assert.Equal(t, in, out)

	in.History = []string{}
	assert.Equal(t, "S1234567D|Tom|1990-01-01|M|Blk 1|81234567", EncodePatient(in))
}

func TestDecodeAppointment(t *testing.T) {
	a, ok := DecodeAppointment("3|true|s1234567d|2099-01-01 0900|Checkup")
	require.True(t, ok)
	assert.Equal(t, "A3", a.ID)
	assert.True(t, a.Done)
	assert.Equal(t, "S1234567D", a.PatientID)
	assert.True(t, a.DateTime.Equal(time.Date(2099, 1, 1, 9, 0, 0, 0, time.Local)))
	assert.Equal(t, "Checkup", a.Description)

	assert.Equal(t, "3|true|S1234567D|2099-01-01 0900|Checkup", EncodeAppointment(clinic.Appointment{
		ID: "A3", Done: true, PatientID: "S1234567D",
		DateTime: time.Date(2099, 1, 1, 9, 0, 0, 0, time.Local), Description: "Checkup",
	}))
}

func TestDecodeAppointment_DescriptionWithSeparator(t *testing.T) {
	a, ok := DecodeAppointment("7|false|S1234567D|2099-01-01 0900|Checkup | follow up")
	require.True(t, ok)
	assert.Equal(t, "Checkup | follow up", a.Description)
}

func TestDecodeAppointment_SkipsCounterAndMalformed(t *testing.T) {
	for _, line := range []string{
		"countId:5",
		"3|false|S1234567D|2099-01-01 0900",
		"x|false|S1234567D|2099-01-01 0900|Checkup",
		"3|false|S1234567D|01-01-2099 09:00|Checkup",
	} {
		_, ok := DecodeAppointment(line)
		assert.False(t, ok, "line %q", line)
	}
}

func TestCounter(t *testing.T) {
	n, ok := DecodeCounter("countId:12")
	require.True(t, ok)
	assert.Equal(t, 12, n)
	assert.Equal(t, "countId:12", EncodeCounter(12))

	_, ok = DecodeCounter("countId:abc")
	assert.False(t, ok)
	_, ok = DecodeCounter("1|false|S1234567D|2099-01-01 0900|x")
	assert.False(t, ok)
}

func TestPrescriptionRoundTrip(t *testing.T) {
	in := clinic.Prescription{
		ID:        "S1234567D-2",
		PatientID: "S1234567D",
		Timestamp: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
		Symptoms:  []string{"Fever", "Cough"},
		Medicines: []string{"Paracetamol"},
		Notes:     "After meals",
	}
	out, ok := DecodePrescription(EncodePrescription(in))
	require.True(t, ok)
	assert.True(t, in.Timestamp.Equal(out.Timestamp))
	out.Timestamp = in.Timestamp
	assert.Equal(t, in, out)

	_, ok = DecodePrescription("S1234567D-1|S1234567D|yesterday|Fever|Panadol|")
	assert.False(t, ok)
}
