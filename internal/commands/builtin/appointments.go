package builtin

import (
	"fmt"

	"clinicshell/internal/clinic"
	"clinicshell/internal/commands"
	"clinicshell/internal/parser"
)

// AddAppointmentCommand implements add-appointment.
type AddAppointmentCommand struct{ base }

// Execute books the appointment.
func (c *AddAppointmentCommand) Execute(req parser.Request, env *commands.Env) error {
	r, ok := req.(parser.AddAppointment)
	if !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	a, err := env.Manager.AddAppointment(r.NRIC, r.DateTime, r.Description)
	if err != nil {
		return err
	}
	env.Printer.Success("Appointment added:")
	env.Printer.Println(a.String())
	return nil
}

// DeleteAppointmentCommand implements delete-appointment.
type DeleteAppointmentCommand struct{ base }

// Execute removes the appointment.
func (c *DeleteAppointmentCommand) Execute(req parser.Request, env *commands.Env) error {
	r, ok := req.(parser.DeleteAppointment)
	if !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	a, err := env.Manager.DeleteAppointment(r.ID)
	if err != nil {
		return err
	}
	env.Printer.Success(fmt.Sprintf("Appointment %s deleted", a.ID))
	return nil
}

// ListAppointmentsCommand implements list-appointment.
type ListAppointmentsCommand struct{ base }

// Execute prints all appointments in their current order.
func (c *ListAppointmentsCommand) Execute(req parser.Request, env *commands.Env) error {
	if _, ok := req.(parser.ListAppointments); !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	printAppointments(env, env.Manager.Appointments())
	return nil
}

// SortAppointmentsCommand implements sort-appointment. The new order is
// kept and saved.
type SortAppointmentsCommand struct{ base }

// Execute reorders and prints the appointments.
func (c *SortAppointmentsCommand) Execute(req parser.Request, env *commands.Env) error {
	r, ok := req.(parser.SortAppointments)
	if !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	switch r.By {
	case parser.SortByDate:
		env.Manager.SortAppointmentsByDate()
	case parser.SortByID:
		env.Manager.SortAppointmentsByID()
	default:
		return fmt.Errorf("unknown sort key %q", r.By)
	}
	env.Printer.Success(fmt.Sprintf("Appointments sorted by %s", r.By))
	printAppointments(env, env.Manager.Appointments())
	return nil
}

// MarkAppointmentCommand implements mark-appointment.
type MarkAppointmentCommand struct{ base }

// Execute marks the appointment as done.
func (c *MarkAppointmentCommand) Execute(req parser.Request, env *commands.Env) error {
	r, ok := req.(parser.MarkAppointment)
	if !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	a, err := env.Manager.MarkAppointment(r.ID)
	if err != nil {
		return err
	}
	env.Printer.Success("Appointment marked as done:")
	env.Printer.Println(a.String())
	return nil
}

// UnmarkAppointmentCommand implements unmark-appointment.
type UnmarkAppointmentCommand struct{ base }

// Execute marks the appointment as not done.
func (c *UnmarkAppointmentCommand) Execute(req parser.Request, env *commands.Env) error {
	r, ok := req.(parser.UnmarkAppointment)
	if !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	a, err := env.Manager.UnmarkAppointment(r.ID)
	if err != nil {
		return err
	}
	env.Printer.Success("Appointment marked as not done:")
	env.Printer.Println(a.String())
	return nil
}

// FindAppointmentCommand implements find-appointment.
type FindAppointmentCommand struct{ base }

// Execute prints one patient's appointments.
func (c *FindAppointmentCommand) Execute(req parser.Request, env *commands.Env) error {
	r, ok := req.(parser.FindAppointment)
	if !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	found, err := env.Manager.FindAppointments(r.NRIC)
	if err != nil {
		return err
	}
	printAppointments(env, found)
	return nil
}

func printAppointments(env *commands.Env, appts []clinic.Appointment) {
	if len(appts) == 0 {
		env.Printer.Info("No appointments found.")
		return
	}
	env.Printer.Heading(fmt.Sprintf("Appointments (%d)", len(appts)))
	items := make([]string, len(appts))
	for i, a := range appts {
		items[i] = a.String()
	}
	env.Printer.List(items)
}

func init() {
	register(&AddAppointmentCommand{base{keyword: parser.KeywordAddAppointment, mutates: true,
		notes: []string{"The date and time cannot be in the past"}}})
	register(&DeleteAppointmentCommand{base{keyword: parser.KeywordDeleteAppointment, mutates: true}})
	register(&ListAppointmentsCommand{base{keyword: parser.KeywordListAppointments}})
	register(&SortAppointmentsCommand{base{keyword: parser.KeywordSortAppointments, mutates: true}})
	register(&MarkAppointmentCommand{base{keyword: parser.KeywordMarkAppointment, mutates: true}})
	register(&UnmarkAppointmentCommand{base{keyword: parser.KeywordUnmarkAppointment, mutates: true}})
	register(&FindAppointmentCommand{base{keyword: parser.KeywordFindAppointment}})
}
