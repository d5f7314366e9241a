package parser

// Usage documents one command for the help listing.
type Usage struct {
	Keyword     string
	Syntax      string
	Description string
	Example     string
}

// usages is kept in the order commands are presented to users.
var usages = []Usage{
	{KeywordHelp, "help", "Show this list of commands", "help"},
	{KeywordAddPatient, "add-patient n/NAME ic/NRIC dob/BIRTHDATE(yyyy-MM-dd) g/GENDER p/PHONE a/ADDRESS [h/HISTORY,...]",
		"Register a new patient", "add-patient n/Tom ic/S1234567D dob/1990-01-01 g/M p/81234567 a/Blk 1"},
	{KeywordDeletePatient, "delete-patient NRIC", "Remove a patient and their appointments", "delete-patient S1234567D"},
	{KeywordViewPatient, "view-patient NRIC", "Show a patient's details", "view-patient S1234567D"},
	{KeywordListPatients, "list-patient", "List all patients", "list-patient"},
	{KeywordEditPatient, "edit-patient ic/NRIC [n/NAME] [dob/BIRTHDATE] [g/GENDER] [a/ADDRESS] [p/PHONE]",
		"Change patient details; omitted fields are kept", "edit-patient ic/S1234567D p/91234567"},
	{KeywordStoreHistory, "store-history ic/NRIC h/MEDICAL_HISTORY", "Add medical history entries", "store-history ic/S1234567D h/Asthma, Diabetes"},
	{KeywordViewHistory, "view-history NRIC | view-history NAME", "Show medical history by NRIC or name", "view-history S1234567D"},
	{KeywordEditHistory, "edit-history ic/NRIC old/OLD_TEXT new/NEW_TEXT", "Replace one medical history entry", "edit-history ic/S1234567D old/Asthma new/Mild asthma"},
	{KeywordAddAppointment, "add-appointment ic/NRIC dt/DATE(yyyy-MM-dd) t/TIME(HHmm) dsc/DESCRIPTION",
		"Book an appointment", "add-appointment ic/S1234567D dt/2099-01-01 t/0900 dsc/Checkup"},
	{KeywordDeleteAppointment, "delete-appointment APPOINTMENT_ID", "Remove an appointment", "delete-appointment A1"},
	{KeywordListAppointments, "list-appointment", "List all appointments", "list-appointment"},
	{KeywordSortAppointments, "sort-appointment byDate | sort-appointment byId", "Sort appointments", "sort-appointment byDate"},
	{KeywordMarkAppointment, "mark-appointment APPOINTMENT_ID", "Mark an appointment as done", "mark-appointment A1"},
	{KeywordUnmarkAppointment, "unmark-appointment APPOINTMENT_ID", "Mark an appointment as not done", "unmark-appointment A1"},
	{KeywordFindAppointment, "find-appointment PATIENT_NRIC", "List one patient's appointments", "find-appointment S1234567D"},
	{KeywordAddPrescription, "add-prescription ic/PATIENT_ID s/SYMPTOMS m/MEDICINES [nt/NOTES]",
		"Record a prescription", "add-prescription ic/S1234567D s/Fever, Cough m/Paracetamol nt/After meals"},
	{KeywordViewAllPrescriptions, "view-all-prescriptions PATIENT_ID", "List one patient's prescriptions", "view-all-prescriptions S1234567D"},
	{KeywordViewPrescription, "view-prescription PRESCRIPTION_ID", "Show one prescription", "view-prescription S1234567D-1"},
	{KeywordExit, "bye", "Save and exit", "bye"},
}

// Usages returns the help entries of every command.
func Usages() []Usage {
	out := make([]Usage, len(usages))
	copy(out, usages)
	return out
}

// UsageFor returns the help entry of keyword.
func UsageFor(keyword string) (Usage, bool) {
	for _, u := range usages {
		if u.Keyword == keyword {
			return u, true
		}
	}
	return Usage{}, false
}
