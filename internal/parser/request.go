package parser

import "time"

// Command keywords, matched case-insensitively against the first token.
const (
	KeywordExit                 = "bye"
	KeywordHelp                 = "help"
	KeywordAddPatient           = "add-patient"
	KeywordDeletePatient        = "delete-patient"
	KeywordViewPatient          = "view-patient"
	KeywordListPatients         = "list-patient"
	KeywordStoreHistory         = "store-history"
	KeywordViewHistory          = "view-history"
	KeywordAddAppointment       = "add-appointment"
	KeywordDeleteAppointment    = "delete-appointment"
	KeywordListAppointments     = "list-appointment"
	KeywordSortAppointments     = "sort-appointment"
	KeywordEditPatient          = "edit-patient"
	KeywordEditHistory          = "edit-history"
	KeywordMarkAppointment      = "mark-appointment"
	KeywordUnmarkAppointment    = "unmark-appointment"
	KeywordFindAppointment      = "find-appointment"
	KeywordAddPrescription      = "add-prescription"
	KeywordViewAllPrescriptions = "view-all-prescriptions"
	KeywordViewPrescription     = "view-prescription"
)

// Request is a validated command ready for execution. The set of
// implementations is closed to this package.
type Request interface {
	Keyword() string
	request()
}

// Exit ends the session.
type Exit struct{}

// Help lists the available commands.
type Help struct{}

// AddPatient registers a new patient.
type AddPatient struct {
	Name      string
	NRIC      string
	Birthdate string
	Gender    string
	Phone     string
	Address   string
	History   []string
}

// DeletePatient removes a patient by identifier.
type DeletePatient struct {
	NRIC string
}

// ViewPatient shows one patient.
type ViewPatient struct {
	NRIC string
}

// ListPatients shows all patients.
type ListPatients struct{}

// StoreHistory appends medical history entries to a patient.
type StoreHistory struct {
	NRIC    string
	History []string
}

// LookupBy says how ViewHistory identifies the patient.
type LookupBy string

const (
	LookupByNRIC LookupBy = "ic"
	LookupByName LookupBy = "n"
)

// ViewHistory shows medical history by identifier or by name.
type ViewHistory struct {
	By    LookupBy
	Value string
}

// AddAppointment books an appointment at a date-time no earlier than now.
type AddAppointment struct {
	NRIC        string
	DateTime    time.Time
	Description string
}

// DeleteAppointment removes an appointment by its A-prefixed id.
type DeleteAppointment struct {
	ID string
}

// ListAppointments shows all appointments.
type ListAppointments struct{}

// SortKey is the canonical ordering for SortAppointments.
type SortKey string

const (
	SortByDate SortKey = "date"
	SortByID   SortKey = "id"
)

// SortAppointments reorders the appointment list.
type SortAppointments struct {
	By SortKey
}

// EditPatient updates patient details. A nil field is left unchanged.
type EditPatient struct {
	NRIC      string
	Name      *string
	Birthdate *string
	Gender    *string
	Address   *string
	Phone     *string
}

// EditHistory replaces one history entry of a patient.
type EditHistory struct {
	NRIC string
	Old  string
	New  string
}

// MarkAppointment flags an appointment as done.
type MarkAppointment struct {
	ID string
}

// UnmarkAppointment clears the done flag of an appointment.
type UnmarkAppointment struct {
	ID string
}

// FindAppointment lists the appointments of one patient.
type FindAppointment struct {
	NRIC string
}

// AddPrescription records a prescription for a patient.
type AddPrescription struct {
	NRIC      string
	Symptoms  []string
	Medicines []string
	Notes     string
}

// ViewAllPrescriptions lists the prescriptions of one patient.
type ViewAllPrescriptions struct {
	NRIC string
}

// ViewPrescription shows one prescription.
type ViewPrescription struct {
	ID string
}

func (Exit) Keyword() string                 { return KeywordExit }
func (Help) Keyword() string                 { return KeywordHelp }
func (AddPatient) Keyword() string           { return KeywordAddPatient }
func (DeletePatient) Keyword() string        { return KeywordDeletePatient }
func (ViewPatient) Keyword() string          { return KeywordViewPatient }
func (ListPatients) Keyword() string         { return KeywordListPatients }
func (StoreHistory) Keyword() string         { return KeywordStoreHistory }
func (ViewHistory) Keyword() string          { return KeywordViewHistory }
func (AddAppointment) Keyword() string       { return KeywordAddAppointment }
func (DeleteAppointment) Keyword() string    { return KeywordDeleteAppointment }
func (ListAppointments) Keyword() string     { return KeywordListAppointments }
func (SortAppointments) Keyword() string     { return KeywordSortAppointments }
func (EditPatient) Keyword() string          { return KeywordEditPatient }
func (EditHistory) Keyword() string          { return KeywordEditHistory }
func (MarkAppointment) Keyword() string      { return KeywordMarkAppointment }
func (UnmarkAppointment) Keyword() string    { return KeywordUnmarkAppointment }
func (FindAppointment) Keyword() string      { return KeywordFindAppointment }
func (AddPrescription) Keyword() string      { return KeywordAddPrescription }
func (ViewAllPrescriptions) Keyword() string { return KeywordViewAllPrescriptions }
func (ViewPrescription) Keyword() string     { return KeywordViewPrescription }

func (Exit) request()                 {}
func (Help) request()                 {}
func (AddPatient) request()           {}
func (DeletePatient) request()        {}
func (ViewPatient) request()          {}
func (ListPatients) request()         {}
func (StoreHistory) request()         {}
func (ViewHistory) request()          {}
func (AddAppointment) request()       {}
func (DeleteAppointment) request()    {}
func (ListAppointments) request()     {}
func (SortAppointments) request()     {}
func (EditPatient) request()          {}
func (EditHistory) request()          {}
func (MarkAppointment) request()      {}
func (UnmarkAppointment) request()    {}
func (FindAppointment) request()      {}
func (AddPrescription) request()      {}
func (ViewAllPrescriptions) request() {}
func (ViewPrescription) request()     {}
