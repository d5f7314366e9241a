// Package storage persists clinic records as pipe-delimited text files.
//
// Loading is best effort: a line that cannot be decoded is logged and
// skipped so one bad record never blocks the rest of the data.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"clinicshell/internal/clinic"
	"clinicshell/internal/logger"
	"clinicshell/internal/parser"
)

// File names inside the data directory.
const (
	PatientFile      = "patient_data.txt"
	AppointmentFile  = "appointment_data.txt"
	PrescriptionFile = "prescription_data.txt"
)

const maxLineSize = 1024 * 1024

// Store reads and writes a clinic.Snapshot under one directory.
type Store struct {
	dir string
	log *log.Logger
}

// New returns a Store rooted at dir. The directory is created on first Save.
func New(dir string) *Store {
	return &Store{
		dir: dir,
		log: logger.NewStyledLogger("Storage"),
	}
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Load reads all record files. Missing files are treated as empty.
func (s *Store) Load() (clinic.Snapshot, error) {
	var snap clinic.Snapshot

	err := s.readLines(PatientFile, func(lineNo int, line string) {
		p, ok := parser.DecodePatient(line)
		if !ok {
			logger.RecordSkipped(PatientFile, lineNo, line)
			return
		}
		snap.Patients = append(snap.Patients, p)
	})
	if err != nil {
		return clinic.Snapshot{}, err
	}

	err = s.readLines(AppointmentFile, func(lineNo int, line string) {
		if n, ok := parser.DecodeCounter(line); ok {
			snap.AppointmentSeq = n
			return
		}
		a, ok := parser.DecodeAppointment(line)
		if !ok {
			logger.RecordSkipped(AppointmentFile, lineNo, line)
			return
		}
		snap.Appointments = append(snap.Appointments, a)
	})
	if err != nil {
		return clinic.Snapshot{}, err
	}

	err = s.readLines(PrescriptionFile, func(lineNo int, line string) {
		rx, ok := parser.DecodePrescription(line)
		if !ok {
			logger.RecordSkipped(PrescriptionFile, lineNo, line)
			return
		}
		snap.Prescriptions = append(snap.Prescriptions, rx)
	})
	if err != nil {
		return clinic.Snapshot{}, err
	}

	s.log.Debug("Loaded records", "dir", s.dir,
		"patients", len(snap.Patients),
		"appointments", len(snap.Appointments),
		"prescriptions", len(snap.Prescriptions))
	return snap, nil
}

func (s *Store) readLines(name string, fn func(lineNo int, line string)) error {
	path := filepath.Join(s.dir, name)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fn(lineNo, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}

// Save writes every record file, replacing each one atomically.
func (s *Store) Save(snap clinic.Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	patients := make([]string, 0, len(snap.Patients))
	for _, p := range snap.Patients {
		patients = append(patients, parser.EncodePatient(p))
	}
	if err := s.writeLines(PatientFile, patients); err != nil {
		return err
	}

	appointments := make([]string, 0, len(snap.Appointments)+1)
	appointments = append(appointments, parser.EncodeCounter(snap.AppointmentSeq))
	for _, a := range snap.Appointments {
		appointments = append(appointments, parser.EncodeAppointment(a))
	}
	if err := s.writeLines(AppointmentFile, appointments); err != nil {
		return err
	}

	prescriptions := make([]string, 0, len(snap.Prescriptions))
	for _, rx := range snap.Prescriptions {
		prescriptions = append(prescriptions, parser.EncodePrescription(rx))
	}
	if err := s.writeLines(PrescriptionFile, prescriptions); err != nil {
		return err
	}

	s.log.Debug("Saved records", "dir", s.dir)
	return nil
}

func (s *Store) writeLines(name string, lines []string) error {
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
