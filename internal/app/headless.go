package app

import (
	"fmt"
	"io"
	"strings"

	"mad-shapes/internal/core"
	"mad-shapes/pkg/shape"
)

// converger is implemented by sims that know when they stopped changing.
type converger interface {
	Converged() bool
}

// RunText resets sim with cfg.Seed and runs cfg.Steps steps, writing frames
// to w. With pacing enabled every step is printed; otherwise only the final
// frame. Sims that converge stop early.
func RunText(w io.Writer, sim core.Sim, cfg *Config) error {
	sim.Reset(cfg.Seed)
	pace := core.NewFixedStep(cfg.TPS)
	step := 0
	for ; step < cfg.Steps; step++ {
		if c, ok := sim.(converger); ok && c.Converged() {
			break
		}
		if pace.Enabled() {
			pace.Wait()
			if err := writeFrame(w, sim, cfg, step); err != nil {
				return err
			}
		}
		sim.Step()
	}
	return writeFrame(w, sim, cfg, step)
}

func writeFrame(w io.Writer, sim core.Sim, cfg *Config, step int) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s step %d\n", sim.Name(), step)
	if p, ok := sim.(core.ParameterProvider); ok {
		for _, l := range p.Parameters().Lines() {
			b.WriteString(l)
			b.WriteByte('\n')
		}
	}
	var body string
	var err error
	if sp, ok := sim.(core.ShapeProvider); ok && cfg.Crop {
		body, err = shape.FormatMultipattern(sp.Shapes(), ' ')
	} else {
		body, err = FormatCells(sim.Cells(), sim.Size().W)
	}
	if err != nil {
		return err
	}
	b.WriteString(body)
	b.WriteByte('\n')
	_, err = io.WriteString(w, b.String())
	return err
}

// FormatCells renders a row-major label buffer with one rune per label,
// using the same labels as shape.FormatMultipattern and '.' for empty cells.
func FormatCells(cells []uint8, width int) (string, error) {
	if width <= 0 {
		return "", fmt.Errorf("format cells: width %d", width)
	}
	var b strings.Builder
	for i, v := range cells {
		if v == 0 {
			b.WriteByte('.')
		} else {
			r, err := shape.Label((int(v) - 1) % shape.MaxLabels)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
		}
		if (i+1)%width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}
