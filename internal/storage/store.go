package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/logger"
	"github.com/san-kum/orbitsim/internal/motion"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

const (
	metadataFile = "metadata.json"
	bodiesFile   = "bodies.csv"

	// DefaultScenarioName names runs whose scenario carries no name.
	DefaultScenarioName = "scenario"
)

var bodiesHeader = []string{"tick", "id", "label", "x", "y", "dx", "dy", "ddx", "ddy"}

type Store struct {
	baseDir string
	log     *log.Logger
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, log: logger.New("storage")}
}

// WithLogger replaces the store logger.
func (s *Store) WithLogger(l *log.Logger) *Store {
	s.log = l
	return s
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type BodyInfo struct {
	ID      body.ID `json:"id"`
	Label   string  `json:"label"`
	Vehicle bool    `json:"vehicle"`
	Mass    float64 `json:"mass"`
	Radius  float64 `json:"radius"`
}

type RunMetadata struct {
	ID              string             `json:"id"`
	Scenario        string             `json:"scenario"`
	Timestamp       time.Time          `json:"timestamp"`
	Ticks           int                `json:"ticks"`
	G               float64            `json:"gravitational_constant"`
	MaxForce        float64            `json:"max_force"`
	KineticFriction float64            `json:"kinetic_friction"`
	Bodies          []BodyInfo         `json:"bodies"`
	Metrics         map[string]float64 `json:"metrics"`
}

// Row is one body at one tick in bodies.csv.
type Row struct {
	Tick         int
	ID           body.ID
	Label        string
	Position     motion.Position
	Velocity     motion.Velocity
	Acceleration motion.Acceleration
}

// Save writes the run record. series holds the snapshots to persist,
// normally collected by a Recorder; result.Final is appended when the
// series does not already end on it.
func (s *Store) Save(scenario string, params physics.Params, result *sim.Result, series []sim.Snapshot) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", runName(scenario), now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:              runID,
		Scenario:        scenario,
		Timestamp:       now,
		Ticks:           result.Ticks,
		G:               params.G,
		MaxForce:        params.MaxForce,
		KineticFriction: params.KineticFriction,
		Bodies:          make([]BodyInfo, 0, len(result.Final.Bodies)),
		Metrics:         result.Metrics,
	}
	for _, b := range result.Final.Bodies {
		meta.Bodies = append(meta.Bodies, BodyInfo{
			ID: b.ID, Label: b.Label, Vehicle: b.Vehicle, Mass: b.Mass, Radius: b.Radius,
		})
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	if n := len(series); n == 0 || series[n-1].Tick != result.Final.Tick {
		series = append(series, result.Final)
	}
	if err := writeBodies(filepath.Join(runDir, bodiesFile), series); err != nil {
		return "", err
	}

	s.log.Printf("saved run %s: %d snapshots", runID, len(series))
	return runID, nil
}

// runName reduces a scenario name to a single safe path segment.
func runName(scenario string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, strings.TrimSpace(scenario))
	name = strings.Trim(name, "-")
	if name == "" {
		return DefaultScenarioName
	}
	return name
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeBodies(path string, series []sim.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(bodiesHeader); err != nil {
		return err
	}

	for _, snap := range series {
		for _, b := range snap.Bodies {
			row := []string{
				strconv.Itoa(snap.Tick),
				strconv.Itoa(int(b.ID)),
				b.Label,
				formatFloat(b.Position.X),
				formatFloat(b.Position.Y),
				formatFloat(b.Velocity.DX),
				formatFloat(b.Velocity.DY),
				formatFloat(b.Acceleration.DDX),
				formatFloat(b.Acceleration.DDY),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			s.log.Printf("skipping %s: %v", entry.Name(), err)
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadRows reads bodies.csv back. Malformed rows are skipped.
func (s *Store) LoadRows(runID string) ([]Row, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, bodiesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Row{}, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row, ok := parseRow(record)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(record []string) (Row, bool) {
	if len(record) != len(bodiesHeader) {
		return Row{}, false
	}
	tick, err := strconv.Atoi(record[0])
	if err != nil {
		return Row{}, false
	}
	id, err := strconv.Atoi(record[1])
	if err != nil {
		return Row{}, false
	}

	vals := make([]float64, 6)
	for i := range vals {
		v, err := strconv.ParseFloat(record[3+i], 64)
		if err != nil {
			return Row{}, false
		}
		vals[i] = v
	}

	return Row{
		Tick:         tick,
		ID:           body.ID(id),
		Label:        record[2],
		Position:     motion.Position{X: vals[0], Y: vals[1]},
		Velocity:     motion.Velocity{DX: vals[2], DY: vals[3]},
		Acceleration: motion.Acceleration{DDX: vals[4], DDY: vals[5]},
	}, true
}

// Series groups rows by body label, in tick order.
func Series(rows []Row) map[string][]Row {
	out := make(map[string][]Row)
	for _, r := range rows {
		out[r.Label] = append(out[r.Label], r)
	}
	for _, rs := range out {
		sort.SliceStable(rs, func(i, j int) bool { return rs[i].Tick < rs[j].Tick })
	}
	return out
}
