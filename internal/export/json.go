package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/orbitsim/internal/sim"
)

type BodyData struct {
	ID      int          `json:"id"`
	Label   string       `json:"label"`
	Vehicle bool         `json:"vehicle"`
	Mass    float64      `json:"mass"`
	Radius  float64      `json:"radius"`
	X       float64      `json:"x"`
	Y       float64      `json:"y"`
	Heading float64      `json:"heading"`
	DX      float64      `json:"dx"`
	DY      float64      `json:"dy"`
	DDX     float64      `json:"ddx"`
	DDY     float64      `json:"ddy"`
	Trail   [][2]float64 `json:"trail"`
	Pilot   *PilotData   `json:"pilot,omitempty"`
}

type PilotData struct {
	Name      string `json:"name"`
	Hitpoints int    `json:"hitpoints"`
	Currency  int    `json:"currency"`
}

type ExportData struct {
	Scenario string             `json:"scenario"`
	Tick     int                `json:"tick"`
	Bodies   []BodyData         `json:"bodies"`
	Metrics  map[string]float64 `json:"metrics,omitempty"`
}

func NewExportData(scenario string, snap sim.Snapshot, metrics map[string]float64) ExportData {
	data := ExportData{
		Scenario: scenario,
		Tick:     snap.Tick,
		Bodies:   make([]BodyData, len(snap.Bodies)),
		Metrics:  metrics,
	}

	for i, b := range snap.Bodies {
		bd := BodyData{
			ID:      int(b.ID),
			Label:   b.Label,
			Vehicle: b.Vehicle,
			Mass:    b.Mass,
			Radius:  b.Radius,
			X:       b.Position.X,
			Y:       b.Position.Y,
			Heading: b.Position.H,
			DX:      b.Velocity.DX,
			DY:      b.Velocity.DY,
			DDX:     b.Acceleration.DDX,
			DDY:     b.Acceleration.DDY,
			Trail:   make([][2]float64, len(b.Trail)),
		}
		for j, p := range b.Trail {
			bd.Trail[j] = [2]float64{p.X, p.Y}
		}
		if b.Vehicle {
			bd.Pilot = &PilotData{Name: b.Pilot.Name, Hitpoints: b.Pilot.Hitpoints, Currency: b.Pilot.Currency}
		}
		data.Bodies[i] = bd
	}
	return data
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, data ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, data)
}
