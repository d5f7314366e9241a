package builtin

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"clinicshell/internal/clinic"
	"clinicshell/internal/commands"
	"clinicshell/internal/parser"
)

// StoreHistoryCommand implements store-history.
type StoreHistoryCommand struct{ base }

// Execute appends history entries to a patient.
func (c *StoreHistoryCommand) Execute(req parser.Request, env *commands.Env) error {
	r, ok := req.(parser.StoreHistory)
	if !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	p, err := env.Manager.StoreHistory(r.NRIC, r.History)
	if err != nil {
		return err
	}
	env.Printer.Success(fmt.Sprintf("Medical history stored for %s (%s)", p.Name, p.ID))
	env.Printer.Field("History", historyText(p.History))
	return nil
}

// ViewHistoryCommand implements view-history.
type ViewHistoryCommand struct{ base }

// Execute prints the history of the patient with the NRIC, or of every
// patient with the name.
func (c *ViewHistoryCommand) Execute(req parser.Request, env *commands.Env) error {
	r, ok := req.(parser.ViewHistory)
	if !ok {
		return commands.UnexpectedRequestError(c, req)
	}

	var patients []clinic.Patient
	if r.By == parser.LookupByNRIC {
		p, err := env.Manager.Patient(r.Value)
		if err != nil {
			return err
		}
		patients = []clinic.Patient{p}
	} else {
		found, err := env.Manager.PatientsByName(r.Value)
		if err != nil {
			return err
		}
		patients = found
	}

	for _, p := range patients {
		env.Printer.Heading(fmt.Sprintf("%s (%s)", p.Name, p.ID))
		if len(p.History) == 0 {
			env.Printer.Info("No medical history recorded.")
			continue
		}
		env.Printer.List(p.History)
	}
	return nil
}

// EditHistoryCommand implements edit-history.
type EditHistoryCommand struct{ base }

// Execute replaces one history entry and shows what changed.
func (c *EditHistoryCommand) Execute(req parser.Request, env *commands.Env) error {
	r, ok := req.(parser.EditHistory)
	if !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	before, err := env.Manager.Patient(r.NRIC)
	if err != nil {
		return err
	}
	p, err := env.Manager.EditHistory(r.NRIC, r.Old, r.New)
	if err != nil {
		return err
	}

	old := r.Old
	for _, entry := range before.History {
		if strings.EqualFold(strings.TrimSpace(entry), strings.TrimSpace(r.Old)) {
			old = entry
			break
		}
	}
	env.Printer.Success(fmt.Sprintf("Medical history updated for %s (%s)", p.Name, p.ID))
	env.Printer.Muted(DiffText(old, r.New))
	return nil
}

// DiffText marks deletions as [-text-] and insertions as {+text+}.
func DiffText(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

func historyText(history []string) string {
	if len(history) == 0 {
		return "None"
	}
	return strings.Join(history, ", ")
}

func init() {
	register(&StoreHistoryCommand{base{keyword: parser.KeywordStoreHistory, mutates: true}})
	register(&ViewHistoryCommand{base{keyword: parser.KeywordViewHistory,
		notes: []string{"A value shaped like an NRIC is looked up by NRIC, anything else by name"}}})
	register(&EditHistoryCommand{base{keyword: parser.KeywordEditHistory, mutates: true}})
}
