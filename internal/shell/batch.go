package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"clinicshell/internal/commands"
)

// BatchExtension is the required extension of batch files.
const BatchExtension = ".clinic"

// ValidateBatchFile checks that path exists and has the batch extension.
func ValidateBatchFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("batch file does not exist: %s", path)
	}
	if ext := filepath.Ext(path); ext != BatchExtension {
		return fmt.Errorf("batch file must have %s extension, got: %q", BatchExtension, ext)
	}
	return nil
}

// RunBatchFile runs the commands in the file at path.
func (s *Session) RunBatchFile(path string) error {
	if err := ValidateBatchFile(path); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return s.RunBatch(f, filepath.Base(path))
}

// RunBatch runs one command per line from r. Blank lines and lines starting
// with # are skipped. The first failing line stops the run and its error is
// returned with the line number; bye stops the run without error.
func (s *Session) RunBatch(r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		err := s.ProcessLine(line)
		if errors.Is(err, commands.ErrExit) {
			return nil
		}
		if err != nil {
			s.log.Error("Batch line failed", "session", s.ID, "file", name, "line", lineNo, "error", err)
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	return nil
}
