// Package parser turns clinic console input into validated requests.
//
// A command line starts with a keyword followed by prefixed fields such as
// "ic/S1234567D dt/2099-01-01". Fields are located with Extract, checked by
// the validators and assembled into one Request per keyword. Every failure is
// a single *Error whose message carries the usage of the command.
package parser

import (
	"sort"
	"strings"
	"time"
	"unicode"
)

type builder func(p *Parser, line string) (Request, error)

// builders maps each keyword to the function that builds its request.
var builders = map[string]builder{
	KeywordExit:                 func(*Parser, string) (Request, error) { return Exit{}, nil },
	KeywordHelp:                 func(*Parser, string) (Request, error) { return Help{}, nil },
	KeywordAddPatient:           buildAddPatient,
	KeywordDeletePatient:        buildDeletePatient,
	KeywordViewPatient:          buildViewPatient,
	KeywordListPatients:         func(*Parser, string) (Request, error) { return ListPatients{}, nil },
	KeywordStoreHistory:         buildStoreHistory,
	KeywordViewHistory:          buildViewHistory,
	KeywordAddAppointment:       buildAddAppointment,
	KeywordDeleteAppointment:    buildDeleteAppointment,
	KeywordListAppointments:     func(*Parser, string) (Request, error) { return ListAppointments{}, nil },
	KeywordSortAppointments:     buildSortAppointments,
	KeywordEditPatient:          buildEditPatient,
	KeywordEditHistory:          buildEditHistory,
	KeywordMarkAppointment:      buildMarkAppointment,
	KeywordUnmarkAppointment:    buildUnmarkAppointment,
	KeywordFindAppointment:      buildFindAppointment,
	KeywordAddPrescription:      buildAddPrescription,
	KeywordViewAllPrescriptions: buildViewAllPrescriptions,
	KeywordViewPrescription:     buildViewPrescription,
}

// Parser builds requests from command lines. The zero value is not usable;
// create one with New.
type Parser struct {
	now func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock replaces time.Now as the reference for rejecting past
// appointments.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse parses line with a Parser that uses the wall clock.
func Parse(line string) (Request, error) {
	return defaultParser.Parse(line)
}

// Parse validates line and returns the request it describes. Blank input is
// a MissingField error; an unrecognized first token is UnknownCommand.
func (p *Parser) Parse(line string) (Request, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, missing("Please enter a command.")
	}

	keyword := strings.ToLower(firstToken(line))
	build, ok := builders[keyword]
	if !ok {
		return nil, &Error{Kind: UnknownCommand, Message: "Unknown command. Please try again."}
	}
	return build(p, line)
}

// Keywords returns every recognized keyword in sorted order.
func Keywords() []string {
	out := make([]string, 0, len(builders))
	for k := range builders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IsKeyword reports whether word is a recognized keyword, ignoring case.
func IsKeyword(word string) bool {
	_, ok := builders[strings.ToLower(word)]
	return ok
}

func firstToken(line string) string {
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		return line[:i]
	}
	return line
}

// stripKeyword drops the leading keyword and any whitespace after it. The
// caller guarantees line starts with keyword, ignoring case.
func stripKeyword(line, keyword string) string {
	if len(line) < len(keyword) {
		return ""
	}
	return strings.TrimLeftFunc(line[len(keyword):], unicode.IsSpace)
}

// remainder returns everything after keyword, trimmed.
func remainder(line, keyword string) string {
	return strings.TrimSpace(stripKeyword(line, keyword))
}
