package parser

import (
	"strconv"
	"strings"
	"time"

	"clinicshell/internal/clinic"
)

// CounterMarker starts the line of the appointment file that stores the
// last issued appointment number.
const CounterMarker = "countId:"

const recordSep = "|"

// DecodePatient reads a stored patient line:
//
//	id|name|dob|gender|address|contact[|history,comma,separated]
//
// Lines with fewer than six fields yield no record.
func DecodePatient(line string) (clinic.Patient, bool) {
	tokens := strings.Split(line, recordSep)
	if len(tokens) < 6 {
		return clinic.Patient{}, false
	}

	p := clinic.Patient{
		ID:      strings.TrimSpace(tokens[0]),
		Name:    tokens[1],
		DOB:     tokens[2],
		Gender:  tokens[3],
		Address: tokens[4],
		Contact: tokens[5],
		History: []string{},
	}
	if p.ID == "" {
		return clinic.Patient{}, false
	}
	if len(tokens) > 6 && strings.TrimSpace(tokens[6]) != "" {
		p.History = SplitList(tokens[6])
	}
	return p, true
}

// EncodePatient writes p in the format read by DecodePatient.
func EncodePatient(p clinic.Patient) string {
	fields := []string{p.ID, p.Name, p.DOB, p.Gender, p.Address, p.Contact}
	if len(p.History) > 0 {
		fields = append(fields, strings.Join(p.History, ","))
	}
	return strings.Join(fields, recordSep)
}

// DecodeAppointment reads a stored appointment line:
//
//	id|isDone|nric|dateTime|description
//
// The id is stored without its "A". The description is the last field, so
// any further separators belong to it. Counter lines and malformed lines yield
// no record.
func DecodeAppointment(line string) (clinic.Appointment, bool) {
	if strings.HasPrefix(line, CounterMarker) {
		return clinic.Appointment{}, false
	}
	tokens := strings.Split(line, recordSep)
	if len(tokens) < 5 {
		return clinic.Appointment{}, false
	}

	id := strings.TrimSpace(tokens[0])
	if _, err := strconv.Atoi(id); err != nil {
		return clinic.Appointment{}, false
	}
	at, err := time.ParseInLocation(DateTimeLayout, strings.TrimSpace(tokens[3]), time.Local)
	if err != nil {
		return clinic.Appointment{}, false
	}

	return clinic.Appointment{
		ID:          "A" + id,
		Done:        tokens[1] == "true",
		PatientID:   strings.ToUpper(strings.TrimSpace(tokens[2])),
		DateTime:    at,
		Description: strings.TrimSpace(strings.Join(tokens[4:], recordSep)),
	}, true
}

// EncodeAppointment writes a in the format read by DecodeAppointment.
func EncodeAppointment(a clinic.Appointment) string {
	return strings.Join([]string{
		strings.TrimPrefix(a.ID, "A"),
		strconv.FormatBool(a.Done),
		a.PatientID,
		a.DateTime.Format(DateTimeLayout),
		a.Description,
	}, recordSep)
}

// DecodeCounter reads a "countId:<n>" line.
func DecodeCounter(line string) (int, bool) {
	if !strings.HasPrefix(line, CounterMarker) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, CounterMarker)))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// EncodeCounter writes the appointment counter line.
func EncodeCounter(n int) string {
	return CounterMarker + strconv.Itoa(n)
}

// DecodePrescription reads a stored prescription line:
//
//	id|patientId|timestamp|symptoms,...|medicines,...[|notes]
//
// The timestamp is RFC 3339.
func DecodePrescription(line string) (clinic.Prescription, bool) {
	tokens := strings.Split(line, recordSep)
	if len(tokens) < 5 {
		return clinic.Prescription{}, false
	}
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(tokens[2]))
	if err != nil {
		return clinic.Prescription{}, false
	}

	rx := clinic.Prescription{
		ID:        strings.ToUpper(strings.TrimSpace(tokens[0])),
		PatientID: strings.ToUpper(strings.TrimSpace(tokens[1])),
		Timestamp: ts,
		Symptoms:  SplitList(tokens[3]),
		Medicines: SplitList(tokens[4]),
	}
	if rx.ID == "" || rx.PatientID == "" {
		return clinic.Prescription{}, false
	}
	if len(tokens) > 5 {
		rx.Notes = strings.Join(tokens[5:], recordSep)
	}
	return rx, true
}

// EncodePrescription writes rx in the format read by DecodePrescription.
func EncodePrescription(rx clinic.Prescription) string {
	return strings.Join([]string{
		rx.ID,
		rx.PatientID,
		rx.Timestamp.Format(time.RFC3339),
		strings.Join(rx.Symptoms, ", "),
		strings.Join(rx.Medicines, ", "),
		rx.Notes,
	}, recordSep)
}
