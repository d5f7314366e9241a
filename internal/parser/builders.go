package parser

import (
	"regexp"
	"strings"
)

var deleteAppointmentPattern = regexp.MustCompile(`^(?i)delete-appointment\s+A\d+$`)

func buildAddPatient(_ *Parser, line string) (Request, error) {
	rest := stripKeyword(line, KeywordAddPatient)
	name, okName := Extract(rest, PrefixName)
	nric, okNRIC := Extract(rest, PrefixNRIC)
	dob, okDOB := Extract(rest, PrefixBirthdate)
	gender, okGender := Extract(rest, PrefixGender)
	phone, okPhone := Extract(rest, PrefixPhone)
	address, okAddress := Extract(rest, PrefixAddress)

	if !okName || !okNRIC || !okDOB || !okGender || !okPhone || !okAddress {
		return nil, missing("Patient details are incomplete!\n" +
			"Please use: add-patient n/NAME ic/NRIC dob/BIRTHDATE(yyyy-MM-dd) g/GENDER p/PHONE a/ADDRESS")
	}
	if err := validateNRIC(nric); err != nil {
		return nil, err
	}

	history := []string{}
	if h, ok := Extract(rest, PrefixHistory); ok {
		history = SplitList(h)
	}

	return AddPatient{
		Name:      name,
		NRIC:      strings.ToUpper(nric),
		Birthdate: dob,
		Gender:    gender,
		Phone:     phone,
		Address:   address,
		History:   history,
	}, nil
}

func buildDeletePatient(_ *Parser, line string) (Request, error) {
	nric := remainder(line, KeywordDeletePatient)
	if nric == "" {
		return nil, missing("Invalid command format. Use: delete-patient NRIC")
	}
	return DeletePatient{NRIC: strings.ToUpper(nric)}, nil
}

func buildViewPatient(_ *Parser, line string) (Request, error) {
	nric := remainder(line, KeywordViewPatient)
	if nric == "" {
		return nil, missing("Invalid command format. Use: view-patient NRIC")
	}
	if !LooksLikeNRIC(nric) {
		return nil, malformed(invalidNRICMessage)
	}
	return ViewPatient{NRIC: strings.ToUpper(nric)}, nil
}

func buildStoreHistory(_ *Parser, line string) (Request, error) {
	rest := stripKeyword(line, KeywordStoreHistory)
	nric, okNRIC := Extract(rest, PrefixNRIC)
	history, okHistory := Extract(rest, PrefixHistory)
	if !okNRIC || !okHistory {
		return nil, missing("Invalid format. Please use: store-history ic/NRIC h/MEDICAL_HISTORY")
	}
	return StoreHistory{NRIC: strings.ToUpper(nric), History: SplitList(history)}, nil
}

// buildViewHistory accepts "ic/NRIC", "n/NAME" or a bare value. A bare value
// with the identifier shape is an identifier lookup, anything else a name.
func buildViewHistory(_ *Parser, line string) (Request, error) {
	rest := strings.TrimSpace(stripKeyword(line, KeywordViewHistory))
	lower := strings.ToLower(rest)

	var req ViewHistory
	switch {
	case strings.HasPrefix(lower, string(PrefixNRIC)):
		value, _ := Extract(rest, PrefixNRIC)
		req = ViewHistory{By: LookupByNRIC, Value: strings.ToUpper(value)}
	case strings.HasPrefix(lower, string(PrefixName)):
		value, _ := Extract(rest, PrefixName)
		req = ViewHistory{By: LookupByName, Value: value}
	case LooksLikeNRIC(rest):
		req = ViewHistory{By: LookupByNRIC, Value: strings.ToUpper(rest)}
	default:
		req = ViewHistory{By: LookupByName, Value: rest}
	}

	if req.Value == "" {
		return nil, missing("Invalid format. Please use: view-history NRIC or view-history NAME")
	}
	return req, nil
}

func buildAddAppointment(p *Parser, line string) (Request, error) {
	rest := stripKeyword(line, KeywordAddAppointment)
	nric, okNRIC := Extract(rest, PrefixNRIC)
	date, okDate := Extract(rest, PrefixDate)
	clock, okTime := Extract(rest, PrefixTime)
	desc, okDesc := Extract(rest, PrefixDescription)

	if !okNRIC || !okDate || !okTime || !okDesc {
		return nil, missing("Missing details or wrong format for add-appointment!\n" +
			"Please use: add-appointment ic/NRIC dt/DATE t/TIME dsc/DESCRIPTION")
	}
	if err := validateNRIC(nric); err != nil {
		return nil, err
	}

	at, err := ParseDateTime(date, clock)
	if err != nil {
		return nil, err
	}
	if err := notBefore(at, p.now()); err != nil {
		return nil, err
	}

	return AddAppointment{NRIC: strings.ToUpper(nric), DateTime: at, Description: desc}, nil
}

func buildDeleteAppointment(_ *Parser, line string) (Request, error) {
	const usage = "Invalid format! Please use: delete-appointment APPOINTMENT_ID"
	id := remainder(line, KeywordDeleteAppointment)
	if id == "" {
		return nil, missing(usage)
	}
	if !deleteAppointmentPattern.MatchString(line) {
		return nil, malformed(usage)
	}
	return DeleteAppointment{ID: strings.ToUpper(id)}, nil
}

func buildSortAppointments(_ *Parser, line string) (Request, error) {
	const usage = "Invalid format! Please use: 'sort-appointment byDate' or " +
		"'sort-appointment byId' (case-insensitive)."
	switch strings.ToLower(remainder(line, KeywordSortAppointments)) {
	case "bydate":
		return SortAppointments{By: SortByDate}, nil
	case "byid":
		return SortAppointments{By: SortByID}, nil
	case "":
		return nil, missing(usage)
	default:
		return nil, malformed(usage)
	}
}

func buildEditPatient(_ *Parser, line string) (Request, error) {
	rest := stripKeyword(line, KeywordEditPatient)
	nric, ok := Extract(rest, PrefixNRIC)
	if !ok {
		return nil, missing("Missing NRIC! Use: edit-patient ic/NRIC [n/NAME] " +
			"[dob/BIRTHDATE] [g/GENDER] [a/ADDRESS] [p/PHONE]")
	}
	return EditPatient{
		NRIC:      strings.ToUpper(nric),
		Name:      optional(rest, PrefixName),
		Birthdate: optional(rest, PrefixBirthdate),
		Gender:    optional(rest, PrefixGender),
		Address:   optional(rest, PrefixAddress),
		Phone:     optional(rest, PrefixPhone),
	}, nil
}

// optional returns nil when prefix is absent so callers can tell "not
// provided" apart from a value.
func optional(input string, prefix Prefix) *string {
	v, ok := Extract(input, prefix)
	if !ok {
		return nil
	}
	return &v
}

func buildEditHistory(_ *Parser, line string) (Request, error) {
	rest := stripKeyword(line, KeywordEditHistory)
	nric, ok := Extract(rest, PrefixNRIC)
	if !ok {
		return nil, missing("Missing NRIC! Use: edit-history ic/NRIC old/OLD_HISTORY new/NEW_HISTORY")
	}
	oldText, okOld := Extract(rest, PrefixOldHistory)
	newText, okNew := Extract(rest, PrefixNewHistory)
	if !okOld || !okNew {
		return nil, missing("Missing old or new history text! Use: edit-history ic/NRIC old/OLD_TEXT new/NEW_TEXT")
	}
	return EditHistory{NRIC: strings.ToUpper(nric), Old: oldText, New: newText}, nil
}

func buildMarkAppointment(_ *Parser, line string) (Request, error) {
	id := remainder(line, KeywordMarkAppointment)
	if id == "" {
		return nil, missing("Invalid format! Use: mark-appointment APPOINTMENT_ID")
	}
	return MarkAppointment{ID: strings.ToUpper(id)}, nil
}

func buildUnmarkAppointment(_ *Parser, line string) (Request, error) {
	id := remainder(line, KeywordUnmarkAppointment)
	if id == "" {
		return nil, missing("Invalid format! Use: unmark-appointment APPOINTMENT_ID")
	}
	return UnmarkAppointment{ID: strings.ToUpper(id)}, nil
}

func buildFindAppointment(_ *Parser, line string) (Request, error) {
	nric := remainder(line, KeywordFindAppointment)
	if nric == "" {
		return nil, missing("Invalid format! Use: find-appointment PATIENT_NRIC")
	}
	return FindAppointment{NRIC: strings.ToUpper(nric)}, nil
}

func buildAddPrescription(_ *Parser, line string) (Request, error) {
	rest := stripKeyword(line, KeywordAddPrescription)
	nric, okNRIC := Extract(rest, PrefixNRIC)
	symptoms, okSymptoms := Extract(rest, PrefixSymptoms)
	medicines, okMedicines := Extract(rest, PrefixMedicines)
	if !okNRIC || !okSymptoms || !okMedicines {
		return nil, missing("Missing details or wrong format for add-prescription!\n" +
			"Please use: add-prescription ic/PATIENT_ID s/SYMPTOMS m/MEDICINES [nt/NOTES]")
	}

	notes, _ := Extract(rest, PrefixNotes)
	return AddPrescription{
		NRIC:      strings.ToUpper(nric),
		Symptoms:  SplitList(symptoms),
		Medicines: SplitList(medicines),
		Notes:     notes,
	}, nil
}

func buildViewAllPrescriptions(_ *Parser, line string) (Request, error) {
	nric := remainder(line, KeywordViewAllPrescriptions)
	if nric == "" {
		return nil, missing("Invalid command format. Use: view-all-prescriptions PATIENT_ID")
	}
	return ViewAllPrescriptions{NRIC: strings.ToUpper(nric)}, nil
}

func buildViewPrescription(_ *Parser, line string) (Request, error) {
	id := remainder(line, KeywordViewPrescription)
	if id == "" {
		return nil, missing("Invalid command format. Use: view-prescription PRESCRIPTION_ID")
	}
	return ViewPrescription{ID: strings.ToUpper(id)}, nil
}
