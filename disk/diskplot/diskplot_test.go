package diskplot

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gonum.org/v1/plot"

	"github.com/cwbudde/algo-disk/internal/testutil"
)

func TestRRFigure(t *testing.T) {
	fig, err := Build("rr")
	if err != nil {
		t.Fatalf("Build(rr) error = %v", err)
	}

	if got, want := fig.Labels(), []string{"a_*=0", "a_*=0.99", "Newtonian"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}

	if !fig.LogX || fig.LogY {
		t.Fatalf("LogX=%v LogY=%v, want log x and linear y", fig.LogX, fig.LogY)
	}

	if fig.XMin != 1 || fig.XMax != 1000 {
		t.Fatalf("x range [%v, %v], want [1, 1000]", fig.XMin, fig.XMax)
	}

	for _, c := range fig.Curves {
		if len(c.X) != 1000 || len(c.Y) != 1000 {
			t.Fatalf("curve %q: %d/%d points, want 1000", c.Label, len(c.X), len(c.Y))
		}

		if c.X[0] != 1 || c.X[len(c.X)-1] != 1000 {
			t.Fatalf("curve %q spans [%v, %v]", c.Label, c.X[0], c.X[len(c.X)-1])
		}

		testutil.RequireFinite(t, c.Y)
		testutil.RequireNonNegative(t, c.Y)
	}

	newt := fig.Curves[2]
	for i, r := range newt.X {
		want := math.Max(0, 1-math.Sqrt(6/r))
		if newt.Y[i] != want {
			t.Fatalf("Newtonian at r=%v: %v, want %v", r, newt.Y[i], want)
		}
	}
}

func TestRRFigurePlot(t *testing.T) {
	fig, err := Build("rr")
	if err != nil {
		t.Fatal(err)
	}

	p, err := fig.Plot()
	if err != nil {
		t.Fatalf("Plot() error = %v", err)
	}

	if _, ok := p.X.Scale.(plot.LogScale); !ok {
		t.Fatalf("x scale = %T, want plot.LogScale", p.X.Scale)
	}

	if p.X.Min != 1 || p.X.Max != 1000 {
		t.Fatalf("x axis [%v, %v], want [1, 1000]", p.X.Min, p.X.Max)
	}

	if p.X.Label.Text != "r/r_g" || p.Y.Label.Text != "R_R" {
		t.Fatalf("axis labels %q / %q", p.X.Label.Text, p.Y.Label.Text)
	}
}

func TestBuildAllAndSave(t *testing.T) {
	dir := t.TempDir()

	for _, name := range Names() {
		fig, err := Build(name, WithPoints(200))
		if err != nil {
			t.Fatalf("Build(%s) error = %v", name, err)
		}

		if fig.Name != name {
			t.Fatalf("figure name %q, want %q", fig.Name, name)
		}

		path := filepath.Join(dir, name+".png")
		if err := fig.Save(path); err != nil {
			t.Fatalf("Save(%s) error = %v", name, err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}

		if info.Size() == 0 {
			t.Fatalf("%s is empty", path)
		}
	}
}

func TestNames(t *testing.T) {
	if got, want := Names(), []string{"blackbody", "rr", "teff"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func TestBuildUnknown(t *testing.T) {
	if _, err := Build("spectrum"); !errors.Is(err, ErrUnknownPlot) {
		t.Fatalf("err = %v, want ErrUnknownPlot", err)
	}
}

func TestPlotDropsNonPositiveOnLogAxes(t *testing.T) {
	fig := &Figure{
		LogX: true,
		LogY: true,
		Curves: []Curve{
			{Label: "partial", X: []float64{0, 1, 2, 3}, Y: []float64{1, 0, 2, 3}},
		},
	}

	xys, err := fig.points(fig.Curves[0])
	if err != nil {
		t.Fatalf("points() error = %v", err)
	}

	if len(xys) != 2 || xys[0].X != 2 || xys[1].X != 3 {
		t.Fatalf("points = %v, want x = [2 3]", xys)
	}

	fig.Curves = append(fig.Curves, Curve{Label: "empty", X: []float64{1}, Y: []float64{0}})
	if _, err := fig.Plot(); !errors.Is(err, ErrEmptyCurve) {
		t.Fatalf("err = %v, want ErrEmptyCurve", err)
	}
}

func TestPlotLengthMismatch(t *testing.T) {
	fig := &Figure{Curves: []Curve{{Label: "bad", X: []float64{1, 2}, Y: []float64{1}}}}
	if _, err := fig.Plot(); err == nil {
		t.Fatal("expected error for mismatched curve")
	}
}

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(WithPoints(50), WithRange(2, 20), WithSize(8, 5))
	want := Config{Points: 50, RMin: 2, RMax: 20, Width: 8, Height: 5}
	if cfg != want {
		t.Fatalf("config = %+v, want %+v", cfg, want)
	}

	cfg = ApplyOptions(WithPoints(1), WithRange(10, 5), WithSize(0, 3))
	if cfg != DefaultConfig() {
		t.Fatalf("invalid options changed defaults: %+v", cfg)
	}
}

func TestTemperatureFigure(t *testing.T) {
	fig, err := Build("teff", WithRange(1, 1e4), WithPoints(300))
	if err != nil {
		t.Fatal(err)
	}

	if len(fig.Curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(fig.Curves))
	}

	// The spinning hole's disk reaches closer in and gets hotter.
	hot := fig.Curves[1].Y[testutil.ArgMax(fig.Curves[1].Y)]
	cool := fig.Curves[0].Y[testutil.ArgMax(fig.Curves[0].Y)]
	if !(hot > cool) {
		t.Fatalf("peak T for a*=0.99 (%v) not above a*=0 (%v)", hot, cool)
	}
}
