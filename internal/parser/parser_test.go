package parser

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local)

func newTestParser() *Parser {
	return New(WithClock(func() time.Time { return fixedNow }))
}

func strPtr(s string) *string { return &s }

func TestParse_Requests(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Request
	}{
		{
			name:  "add patient without history",
			input: "add-patient n/Tom ic/S1234567D dob/1990-01-01 g/M p/81234567 a/Blk 1",
			expected: AddPatient{
				Name: "Tom", NRIC: "S1234567D", Birthdate: "1990-01-01",
				Gender: "M", Phone: "81234567", Address: "Blk 1", History: []string{},
			},
		},
		{
			name:  "add patient with history in any field order",
			input: "ADD-PATIENT a/12 Kent Rd h/Asthma, Diabetes ic/s1234567d n/Tom Tan g/M dob/1990-01-01 p/8123",
			expected: AddPatient{
				Name: "Tom Tan", NRIC: "S1234567D", Birthdate: "1990-01-01",
				Gender: "M", Phone: "8123", Address: "12 Kent Rd", History: []string{"Asthma", "Diabetes"},
			},
		},
		{
			name:     "delete patient",
			input:    "delete-patient S1234567D",
			expected: DeletePatient{NRIC: "S1234567D"},
		},
		{
			name:     "view patient",
			input:    "view-patient s1234567d",
			expected: ViewPatient{NRIC: "S1234567D"},
		},
		{
			name:     "list patients",
			input:    "list-patient",
			expected: ListPatients{},
		},
		{
			name:     "store history",
			input:    "store-history ic/S1234567D h/Asthma, Flu",
			expected: StoreHistory{NRIC: "S1234567D", History: []string{"Asthma", "Flu"}},
		},
		{
			name:     "view history by bare nric",
			input:    "view-history S1234567D",
			expected: ViewHistory{By: LookupByNRIC, Value: "S1234567D"},
		},
		{
			name:     "view history by bare name",
			input:    "view-history John Tan",
			expected: ViewHistory{By: LookupByName, Value: "John Tan"},
		},
		{
			name:     "view history by ic prefix",
			input:    "view-history ic/S1234567D",
			expected: ViewHistory{By: LookupByNRIC, Value: "S1234567D"},
		},
		{
			name:     "view history by name prefix",
			input:    "view-history n/John Tan",
			expected: ViewHistory{By: LookupByName, Value: "John Tan"},
		},
		{
			name:  "add appointment",
			input: "add-appointment ic/S1234567D dt/2099-01-01 t/0900 dsc/Checkup",
			expected: AddAppointment{
				NRIC: "S1234567D", DateTime: time.Date(2099, 1, 1, 9, 0, 0, 0, time.Local), Description: "Checkup",
			},
		},
		{
			name:  "add appointment at the current minute",
			input: "add-appointment ic/S1234567D dt/2026-10-19 t/0900 dsc/Now",
			expected: AddAppointment{
				NRIC: "S1234567D", DateTime: fixedNow, Description: "Now",
			},
		},
		{
			name:     "delete appointment",
			input:    "delete-appointment a12",
			expected: DeleteAppointment{ID: "A12"},
		},
		{
			name:     "list appointments",
			input:    "list-appointment",
			expected: ListAppointments{},
		},
		{
			name:     "sort by date",
			input:    "sort-appointment byDate",
			expected: SortAppointments{By: SortByDate},
		},
		{
			name:     "sort by date upper case",
			input:    "sort-appointment BYDATE",
			expected: SortAppointments{By: SortByDate},
		},
		{
			name:     "sort by id",
			input:    "sort-appointment byid",
			expected: SortAppointments{By: SortByID},
		},
		{
			name:     "edit patient with some fields",
			input:    "edit-patient ic/S1234567D p/91234567 a/New Street 5",
			expected: EditPatient{NRIC: "S1234567D", Address: strPtr("New Street 5"), Phone: strPtr("91234567")},
		},
		{
			name:     "edit history",
			input:    "edit-history ic/S1234567D old/Asthma new/Mild asthma",
			expected: EditHistory{NRIC: "S1234567D", Old: "Asthma", New: "Mild asthma"},
		},
		{
			name:     "mark appointment",
			input:    "mark-appointment A1",
			expected: MarkAppointment{ID: "A1"},
		},
		{
			name:     "unmark appointment",
			input:    "unmark-appointment A1",
			expected: UnmarkAppointment{ID: "A1"},
		},
		{
			name:     "find appointment",
			input:    "find-appointment S1234567D",
			expected: FindAppointment{NRIC: "S1234567D"},
		},
		{
			name:  "add prescription without notes",
			input: "add-prescription ic/S1234567D s/Fever, Cough m/Paracetamol, Cough syrup",
			expected: AddPrescription{
				NRIC: "S1234567D", Symptoms: []string{"Fever", "Cough"},
				Medicines: []string{"Paracetamol", "Cough syrup"}, Notes: "",
			},
		},
		{
			name:  "add prescription with notes",
			input: "add-prescription ic/S1234567D s/Fever m/Paracetamol nt/After meals",
			expected: AddPrescription{
				NRIC: "S1234567D", Symptoms: []string{"Fever"},
				Medicines: []string{"Paracetamol"}, Notes: "After meals",
			},
		},
		{
			name:     "view all prescriptions",
			input:    "view-all-prescriptions S1234567D",
			expected: ViewAllPrescriptions{NRIC: "S1234567D"},
		},
		{
			name:     "view prescription",
			input:    "view-prescription S1234567D-1",
			expected: ViewPrescription{ID: "S1234567D-1"},
		},
		{
			name:     "bye",
			input:    "  BYE  ",
			expected: Exit{},
		},
		{
			name:     "help",
			input:    "help",
			expected: Help{},
		},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
			assert.Equal(t, tt.expected.Keyword(), got.Keyword())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    *Error
		message string
	}{
		{"empty input", "", ErrMissingField, "Please enter a command."},
		{"blank input", "   \t ", ErrMissingField, "Please enter a command."},
		{"unknown command", "launch-rocket now", ErrUnknownCommand, "Unknown command. Please try again."},
		{"keyword must be the whole token", "add-patientx n/Tom", ErrUnknownCommand, ""},
		{"add patient missing address", "add-patient n/Tom ic/S1234567D dob/1990-01-01 g/M p/8123", ErrMissingField,
			"Patient details are incomplete!\nPlease use: add-patient n/NAME ic/NRIC dob/BIRTHDATE(yyyy-MM-dd) g/GENDER p/PHONE a/ADDRESS"},
		{"add patient bad nric", "add-patient n/Tom ic/X123 dob/1990-01-01 g/M p/8123 a/Blk 1", ErrMalformedValue,
			"Invalid IC format. Please use a valid IC e.g. S1234567D"},
		{"delete patient without id", "delete-patient", ErrMissingField, "Invalid command format. Use: delete-patient NRIC"},
		{"view patient without id", "view-patient   ", ErrMissingField, "Invalid command format. Use: view-patient NRIC"},
		{"view patient bad id", "view-patient John", ErrMalformedValue, "Invalid IC format. Please use a valid IC e.g. S1234567D"},
		{"store history missing h", "store-history ic/S1234567D", ErrMissingField,
			"Invalid format. Please use: store-history ic/NRIC h/MEDICAL_HISTORY"},
		{"view history without value", "view-history", ErrMissingField,
			"Invalid format. Please use: view-history NRIC or view-history NAME"},
		{"view history empty ic", "view-history ic/", ErrMissingField, ""},
		{"add appointment missing time", "add-appointment ic/S1234567D dt/2099-01-01 dsc/Checkup", ErrMissingField,
			"Missing details or wrong format for add-appointment!\nPlease use: add-appointment ic/NRIC dt/DATE t/TIME dsc/DESCRIPTION"},
		{"add appointment bad nric", "add-appointment ic/A1234567D dt/2099-01-01 t/0900 dsc/Checkup", ErrMalformedValue,
			"Invalid IC format. Please use a valid IC e.g. S1234567D"},
		{"add appointment bad date", "add-appointment ic/S1234567D dt/01-01-2099 t/0900 dsc/Checkup", ErrMalformedValue,
			"Invalid date/time format. Please use: dt/yyyy-MM-dd and t/HHmm"},
		{"add appointment in the past", "add-appointment ic/S1234567D dt/2020-01-01 t/0900 dsc/Checkup", ErrSemanticViolation,
			"The appointment date/time cannot be before the current date/time"},
		{"add appointment one minute ago", "add-appointment ic/S1234567D dt/2026-10-19 t/0859 dsc/Checkup", ErrSemanticViolation, ""},
		{"delete appointment without id", "delete-appointment", ErrMissingField,
			"Invalid format! Please use: delete-appointment APPOINTMENT_ID"},
		{"delete appointment bad id", "delete-appointment 12", ErrMalformedValue,
			"Invalid format! Please use: delete-appointment APPOINTMENT_ID"},
		{"delete appointment trailing text", "delete-appointment A1 A2", ErrMalformedValue, ""},
		{"sort by week", "sort-appointment byWeek", ErrMalformedValue,
			"Invalid format! Please use: 'sort-appointment byDate' or 'sort-appointment byId' (case-insensitive)."},
		{"sort without key", "sort-appointment", ErrMissingField, ""},
		{"edit patient without nric", "edit-patient n/Tom", ErrMissingField,
			"Missing NRIC! Use: edit-patient ic/NRIC [n/NAME] [dob/BIRTHDATE] [g/GENDER] [a/ADDRESS] [p/PHONE]"},
		{"edit history without nric", "edit-history old/a new/b", ErrMissingField,
			"Missing NRIC! Use: edit-history ic/NRIC old/OLD_HISTORY new/NEW_HISTORY"},
		{"edit history without new", "edit-history ic/S1234567D old/a", ErrMissingField,
			"Missing old or new history text! Use: edit-history ic/NRIC old/OLD_TEXT new/NEW_TEXT"},
		{"mark without id", "mark-appointment", ErrMissingField, "Invalid format! Use: mark-appointment APPOINTMENT_ID"},
		{"unmark without id", "unmark-appointment ", ErrMissingField, "Invalid format! Use: unmark-appointment APPOINTMENT_ID"},
		{"find without id", "find-appointment", ErrMissingField, "Invalid format! Use: find-appointment PATIENT_NRIC"},
		{"add prescription missing medicines", "add-prescription ic/S1234567D s/Fever", ErrMissingField,
			"Missing details or wrong format for add-prescription!\nPlease use: add-prescription ic/PATIENT_ID s/SYMPTOMS m/MEDICINES [nt/NOTES]"},
		{"view all prescriptions without id", "view-all-prescriptions", ErrMissingField,
			"Invalid command format. Use: view-all-prescriptions PATIENT_ID"},
		{"view prescription without id", "view-prescription", ErrMissingField,
			"Invalid command format. Use: view-prescription PRESCRIPTION_ID"},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := p.Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, req)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.kind.Kind, perr.Kind)
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestParse_ErrorKindsAreExclusive(t *testing.T) {
	_, err := newTestParser().Parse("sort-appointment byWeek")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedValue))
	assert.False(t, errors.Is(err, ErrMissingField))
	assert.False(t, errors.Is(err, ErrSemanticViolation))
	assert.False(t, errors.Is(err, ErrUnknownCommand))
}

func TestParse_EditPatientKeepsAbsentFieldsNil(t *testing.T) {
	req, err := newTestParser().Parse("edit-patient ic/S1234567D n/ g/F")
	require.NoError(t, err)

	edit, ok := req.(EditPatient)
	require.True(t, ok)
	assert.Nil(t, edit.Name, "empty value is treated as absent")
	assert.Nil(t, edit.Birthdate)
	assert.Nil(t, edit.Address)
	assert.Nil(t, edit.Phone)
	require.NotNil(t, edit.Gender)
	assert.Equal(t, "F", *edit.Gender)
}

func TestParse_FutureAppointmentWithWallClock(t *testing.T) {
	req, err := Parse("add-appointment ic/S1234567D dt/2099-01-01 t/0900 dsc/Checkup")
	require.NoError(t, err)
	assert.Equal(t, KeywordAddAppointment, req.Keyword())

	_, err = Parse("add-appointment ic/S1234567D dt/2000-01-01 t/0900 dsc/Checkup")
	assert.True(t, errors.Is(err, ErrSemanticViolation))
}

func TestKeywords(t *testing.T) {
	keywords := Keywords()
	assert.Len(t, keywords, 20)
	assert.Contains(t, keywords, "view-all-prescriptions")
	assert.True(t, IsKeyword("BYE"))
	assert.False(t, IsKeyword("exit"))

	for _, u := range Usages() {
		assert.True(t, IsKeyword(u.Keyword), u.Keyword)
	}
	assert.Len(t, Usages(), len(keywords))
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "missing_field", MissingField.String())
	assert.Equal(t, "malformed_value", MalformedValue.String())
	assert.Equal(t, "semantic_violation", SemanticViolation.String())
	assert.Equal(t, "unknown_command", UnknownCommand.String())
	assert.Equal(t, "error_kind(0)", ErrorKind(0).String())
}
