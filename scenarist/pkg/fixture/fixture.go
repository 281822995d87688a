package fixture

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"loopfixtures/scenarist/defs"

	"go.uber.org/zap"
)

type Writer struct {
	Dir    string
	Logger *zap.Logger
}

func New(dir string, logger *zap.Logger) *Writer {
	return &Writer{
		Dir:    dir,
		Logger: logger,
	}
}

func Encode(w io.Writer, sc defs.Scenario) error {
	if err := json.NewEncoder(w).Encode(sc); err != nil {
		return fmt.Errorf("unable to encode scenario: %w", err)
	}
	return nil
}

func Decode(r io.Reader) (defs.Scenario, error) {
	var sc defs.Scenario
	if err := json.NewDecoder(r).Decode(&sc); err != nil {
		return defs.Scenario{}, fmt.Errorf("unable to decode scenario: %w", err)
	}
	return sc, nil
}

// Write creates or truncates the scenario file in w.Dir and returns its path.
// A failed write may leave a partial file behind.
func (w *Writer) Write(sc defs.Scenario) (path string, err error) {
	path = filepath.Join(w.Dir, defs.ScenarioName)

	w.Logger.Debug(
		"writing scenario",
		zap.String("path", path),
		zap.Int("glucose", len(sc.GlucoseValues)),
		zap.Int("basal", len(sc.BasalDoses)),
		zap.Int("bolus", len(sc.BolusDoses)),
		zap.Int("carbs", len(sc.CarbEntries)),
	)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("unable to create scenario file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close scenario file: %w", cerr)
		}
	}()

	if err = Encode(file, sc); err != nil {
		w.Logger.Debug(
			"unable to write scenario",
			zap.String("path", path),
			zap.Error(err),
		)
		return "", err
	}

	return path, nil
}

func Read(path string) (defs.Scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return defs.Scenario{}, fmt.Errorf("unable to open scenario file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}
