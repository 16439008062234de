// Package trajectory samples and draws the parabolic flight of a jump.
package trajectory

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"net/http"

	"Dunklab/internal/calc/kinematics"
	"Dunklab/internal/calc/respond"
	"Dunklab/internal/calc/suite"
	"Dunklab/pkg/metrics"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoJump is returned for a zero jump or a calculator without one.
var ErrNoJump = errors.New("no jump to draw")

const (
	DefaultSamples = 60
	gravityIn      = kinematics.Gravity * 12 // in/s²
)

// Point is the centre-of-mass height (inches) at time T (seconds) after takeoff.
type Point struct {
	T float64 `json:"t"`
	Y float64 `json:"y"`
}

// Points samples y(t) = v0·t − g·t²/2 at n evenly spaced times from takeoff
// to landing. The peak equals jumpIn.
func Points(jumpIn float64, n int) ([]Point, error) {
	if jumpIn <= 0 || math.IsNaN(jumpIn) {
		return nil, ErrNoJump
	}
	if n < 2 {
		n = 2
	}
	hang := kinematics.HangTime(jumpIn)
	v0 := math.Sqrt(2 * gravityIn * jumpIn)

	pts := make([]Point, n)
	for i := range pts {
		t := hang * float64(i) / float64(n-1)
		y := v0*t - gravityIn*t*t/2
		pts[i] = Point{T: t, Y: math.Max(0, y)}
	}
	return pts, nil
}

// Render draws the jump path as a PNG.
func Render(jumpIn float64, title string) ([]byte, error) {
	pts, err := Points(jumpIn, DefaultSamples)
	if err != nil {
		return nil, err
	}
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i] = plotter.XY{X: p.T, Y: p.Y}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Height (in)"
	p.Y.Min = 0
	p.Y.Max = jumpIn * 1.15
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("create jump line: %w", err)
	}
	line.Color = color.RGBA{R: 230, G: 90, B: 20, A: 255}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)

	peak, err := plotter.NewLine(plotter.XYs{{X: 0, Y: jumpIn}, {X: pts[len(pts)-1].T, Y: jumpIn}})
	if err != nil {
		return nil, fmt.Errorf("create peak line: %w", err)
	}
	peak.Color = color.Gray{Y: 128}
	peak.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(peak)
	p.Legend.Add(fmt.Sprintf("Peak %.1f in", jumpIn), peak)
	p.Legend.Top = true

	writer, err := p.WriterTo(vg.Points(640), vg.Points(360), "png")
	if err != nil {
		return nil, fmt.Errorf("create plot writer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write plot: %w", err)
	}
	return buf.Bytes(), nil
}

type Handler struct {
	Suite *suite.Registry
}

func (h *Handler) Draw(w http.ResponseWriter, r *http.Request) {
	out, err := h.Suite.Load(r)
	if err != nil {
		suite.Fail(w, err)
		return
	}
	jump, ok := out.JumpHeight()
	if !ok {
		respond.Error(w, http.StatusNotFound, "no_trajectory", fmt.Errorf("%w: %s has no jump path", ErrNoJump, out.Slug))
		return
	}
	body, err := Render(jump, out.Title)
	if errors.Is(err, ErrNoJump) {
		respond.Error(w, http.StatusUnprocessableEntity, "no_jump", err)
		return
	}
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "render_failed", err)
		return
	}
	metrics.RecordExport("png")

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(body)
}
