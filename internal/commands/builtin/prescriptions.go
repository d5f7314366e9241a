package builtin

import (
	"fmt"

	"clinicshell/internal/commands"
	"clinicshell/internal/parser"
)

// AddPrescriptionCommand implements add-prescription.
type AddPrescriptionCommand struct{ base }

// Execute records the prescription and prints it.
func (c *AddPrescriptionCommand) Execute(req parser.Request, env *commands.Env) error {
	r, ok := req.(parser.AddPrescription)
	if !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	rx, err := env.Manager.AddPrescription(r.NRIC, r.Symptoms, r.Medicines, r.Notes)
	if err != nil {
		return err
	}
	env.Printer.Success("Prescription added:")
	env.Printer.Println(rx.String())
	return nil
}

// ViewAllPrescriptionsCommand implements view-all-prescriptions.
type ViewAllPrescriptionsCommand struct{ base }

// Execute prints one patient's prescriptions, oldest first.
func (c *ViewAllPrescriptionsCommand) Execute(req parser.Request, env *commands.Env) error {
	r, ok := req.(parser.ViewAllPrescriptions)
	if !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	list, err := env.Manager.Prescriptions(r.NRIC)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		env.Printer.Info(fmt.Sprintf("No prescriptions found for %s.", r.NRIC))
		return nil
	}
	env.Printer.Heading(fmt.Sprintf("Prescriptions for %s (%d)", r.NRIC, len(list)))
	for _, rx := range list {
		env.Printer.Println(rx.String())
	}
	return nil
}

// ViewPrescriptionCommand implements view-prescription.
type ViewPrescriptionCommand struct{ base }

// Execute prints one prescription.
func (c *ViewPrescriptionCommand) Execute(req parser.Request, env *commands.Env) error {
	r, ok := req.(parser.ViewPrescription)
	if !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	rx, err := env.Manager.Prescription(r.ID)
	if err != nil {
		return err
	}
	env.Printer.Println(rx.String())
	return nil
}

func init() {
	register(&AddPrescriptionCommand{base{keyword: parser.KeywordAddPrescription, mutates: true}})
	register(&ViewAllPrescriptionsCommand{base{keyword: parser.KeywordViewAllPrescriptions}})
	register(&ViewPrescriptionCommand{base{keyword: parser.KeywordViewPrescription}})
}
