package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/midbel/graph"
	"github.com/midbel/graph/decode"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

var defaultPad = graph.Padding{
	Top:    80,
	Right:  80,
	Bottom: 80,
	Left:   80,
}

type axisFlags struct {
	min    float64
	max    float64
	scale  string
	step   float64
	offset float64
	sub    float64
	mirror bool
	label  string
	place  string
}

func (a *axisFlags) attach(prefix string, fmin, fmax float64, place string) {
	flag.Float64Var(&a.min, prefix+"min", fmin, "axis minimum")
	flag.Float64Var(&a.max, prefix+"max", fmax, "axis maximum")
	flag.StringVar(&a.scale, prefix+"scale", "linear", "axis scale (linear, log)")
	flag.Float64Var(&a.step, prefix+"step", 10, "main tick step")
	flag.Float64Var(&a.offset, prefix+"offset", 0, "tick sequence offset")
	flag.Float64Var(&a.sub, prefix+"sub", 0, "sub tick step (0 disables)")
	flag.BoolVar(&a.mirror, prefix+"mirror", false, "mirror ticks on the opposite edge")
	flag.StringVar(&a.label, prefix+"label", "", "axis label")
	flag.StringVar(&a.place, prefix+"place", place, "axis placement")
}

func (a *axisFlags) makeAxis() (graph.Axis, error) {
	iv, err := graph.NewInterval(a.min, a.max)
	if err != nil {
		return graph.Axis{}, err
	}
	return a.axisFor(iv)
}

func (a *axisFlags) axisFor(iv graph.Interval) (graph.Axis, error) {
	scale := graph.LinearScale()
	if a.scale == "log" {
		scale = graph.LogScale(10)
	}
	ax, err := graph.NewAxis(iv, scale, placementOf(a.place))
	if err != nil {
		return graph.Axis{}, err
	}
	ax.Label = a.label
	ax.MirrorMain = a.mirror
	ax.MirrorSub = a.mirror
	if a.scale == "log" {
		ax.MainTicks = graph.LogMajorTicker(10)
		ax.SubTicks = graph.LogMinorTicker(10)
		ax.TickLabels = graph.TickLabels{
			Ticker:    ax.MainTicks,
			Formatter: graph.ScientificFormatter(0),
		}
		return ax, nil
	}
	ax.MainTicks = graph.StepTicker(a.step, a.offset)
	if a.sub > 0 {
		ax.SubTicks = graph.StepTicker(a.sub, a.offset)
	}
	ax.TickLabels = graph.TickLabels{
		Ticker:    ax.MainTicks,
		Formatter: graph.BasicFormatter(1),
	}
	return ax, nil
}

func placementOf(str string) graph.Placement {
	switch str {
	case "top":
		return graph.Top
	case "left":
		return graph.Left
	case "right":
		return graph.Right
	default:
		return graph.Bottom
	}
}

func main() {
	var (
		xflags axisFlags
		yflags axisFlags
		title  = flag.String("title", "", "graph title")
		marker = flag.String("marker", "circle", "marker shape")
		xcol   = flag.Int("xcol", 0, "index of x column")
		ycol   = flag.Int("ycol", 1, "index of y column")
		delim  = flag.String("delim", "tab", "column delimiter (tab, space, comma, semicolon)")
		width  = flag.Float64("width", defaultWidth, "chart width")
		height = flag.Float64("height", defaultHeight, "chart height")
		frame  = flag.Bool("frame", true, "draw the plot frame")
		auto   = flag.Bool("auto", false, "fit axis intervals to the data")
		dir    = flag.String("dir", ".", "output directory")
	)
	xflags.attach("x", 0, 100, "bottom")
	yflags.attach("y", 0, 100, "left")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "no data file given")
		os.Exit(2)
	}

	xaxis, err := xflags.makeAxis()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	yaxis, err := yflags.makeAxis()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ch := graph.Chart{
		Width:   *width,
		Height:  *height,
		Padding: defaultPad,
		Style:   graph.DefaultStyle(),
	}
	if *frame {
		ch.Frame = graph.Frame{Top: true, Bottom: true, Left: true, Right: true}
	}

	set := settings{
		chart: ch,
		xaxis: xaxis,
		yaxis: yaxis,
		title: *title,
		shape: graph.Shape(*marker),
		xcol:  *xcol,
		ycol:  *ycol,
		delim: decode.Delimiter(*delim),
		dir:   *dir,
	}
	if *auto {
		set.xauto = &xflags
		set.yauto = &yflags
	}

	var grp errgroup.Group
	for _, file := range flag.Args() {
		file := file
		grp.Go(func() error {
			return renderFile(set, file)
		})
	}
	if err := grp.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type settings struct {
	chart graph.Chart
	xaxis graph.Axis
	yaxis graph.Axis
	title string
	shape graph.Shape
	xcol  int
	ycol  int
	delim rune
	dir   string

	xauto *axisFlags
	yauto *axisFlags
}

// renderFile builds one graph per data file. The chart and axes are
// read-only here so files render concurrently.
func renderFile(set settings, file string) error {
	r, err := os.Open(file)
	if err != nil {
		return err
	}
	defer r.Close()

	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	serie, err := decode.Series(r, name, set.xcol, set.ycol, set.delim)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	var (
		xaxis = set.xaxis
		yaxis = set.yaxis
	)
	if xiv, yiv, ok := serie.Extent(); ok && set.xauto != nil {
		if xaxis, err = set.xauto.axisFor(xiv); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if yaxis, err = set.yauto.axisFor(yiv); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}

	g := graph.Graph{
		Title: set.title,
		X:     xaxis,
		Y:     yaxis,
		Plots: []graph.Plot{
			{Series: serie, Shape: set.shape},
		},
	}
	if g.Title == "" {
		g.Title = name
	}

	w, err := os.Create(filepath.Join(set.dir, name+".svg"))
	if err != nil {
		return err
	}
	defer w.Close()

	set.chart.Render(w, g)
	return nil
}
