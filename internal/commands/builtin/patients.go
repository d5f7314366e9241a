package builtin

import (
	"fmt"

	"clinicshell/internal/clinic"
	"clinicshell/internal/commands"
	"clinicshell/internal/parser"
)

// AddPatientCommand implements add-patient.
type AddPatientCommand struct{ base }

// Execute registers the patient.
func (c *AddPatientCommand) Execute(req parser.Request, env *commands.Env) error {
	r, ok := req.(parser.AddPatient)
	if !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	p := clinic.Patient{
		ID:      r.NRIC,
		Name:    r.Name,
		DOB:     r.Birthdate,
		Gender:  r.Gender,
		Address: r.Address,
		Contact: r.Phone,
		History: r.History,
	}
	if err := env.Manager.AddPatient(p); err != nil {
		return err
	}
	env.Printer.Success(fmt.Sprintf("Patient added: %s (%s)", p.Name, p.ID))
	return nil
}

// DeletePatientCommand implements delete-patient.
type DeletePatientCommand struct{ base }

// Execute removes the patient along with their appointments and prescriptions.
func (c *DeletePatientCommand) Execute(req parser.Request, env *commands.Env) error {
	r, ok := req.(parser.DeletePatient)
	if !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	p, err := env.Manager.DeletePatient(r.NRIC)
	if err != nil {
		return err
	}
	env.Printer.Success(fmt.Sprintf("Patient deleted: %s (%s)", p.Name, p.ID))
	return nil
}

// ViewPatientCommand implements view-patient.
type ViewPatientCommand struct{ base }

// Execute prints one patient's details.
func (c *ViewPatientCommand) Execute(req parser.Request, env *commands.Env) error {
	r, ok := req.(parser.ViewPatient)
	if !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	p, err := env.Manager.Patient(r.NRIC)
	if err != nil {
		return err
	}
	printPatient(env, p)
	return nil
}

// ListPatientsCommand implements list-patient.
type ListPatientsCommand struct{ base }

// Execute prints every patient in registration order.
func (c *ListPatientsCommand) Execute(req parser.Request, env *commands.Env) error {
	if _, ok := req.(parser.ListPatients); !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	patients := env.Manager.Patients()
	if len(patients) == 0 {
		env.Printer.Info("No patients found.")
		return nil
	}
	env.Printer.Heading(fmt.Sprintf("Patients (%d)", len(patients)))
	items := make([]string, len(patients))
	for i, p := range patients {
		items[i] = p.String()
	}
	env.Printer.List(items)
	return nil
}

// EditPatientCommand implements edit-patient.
type EditPatientCommand struct{ base }

// Execute changes the given fields and keeps the rest.
func (c *EditPatientCommand) Execute(req parser.Request, env *commands.Env) error {
	r, ok := req.(parser.EditPatient)
	if !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	p, err := env.Manager.EditPatient(r.NRIC, clinic.PatientUpdate{
		Name:    r.Name,
		DOB:     r.Birthdate,
		Gender:  r.Gender,
		Address: r.Address,
		Contact: r.Phone,
	})
	if err != nil {
		return err
	}
	env.Printer.Success("Patient updated:")
	printPatient(env, p)
	return nil
}

func printPatient(env *commands.Env, p clinic.Patient) {
	env.Printer.Field("NRIC", p.ID)
	env.Printer.Field("Name", p.Name)
	env.Printer.Field("DOB", p.DOB)
	env.Printer.Field("Gender", p.Gender)
	env.Printer.Field("Address", p.Address)
	env.Printer.Field("Contact", p.Contact)
	env.Printer.Field("History", historyText(p.History))
}

func init() {
	register(&AddPatientCommand{base{keyword: parser.KeywordAddPatient, mutates: true}})
	register(&DeletePatientCommand{base{keyword: parser.KeywordDeletePatient, mutates: true,
		notes: []string{"Also deletes the patient's appointments and prescriptions"}}})
	register(&ViewPatientCommand{base{keyword: parser.KeywordViewPatient}})
	register(&ListPatientsCommand{base{keyword: parser.KeywordListPatients}})
	register(&EditPatientCommand{base{keyword: parser.KeywordEditPatient, mutates: true}})
}
