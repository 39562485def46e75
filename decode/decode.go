// Package decode parses raw delimited text into graph series. Blank
// lines, comments, short rows and non numeric cells are skipped
// silently: a bad row costs one point, never the chart.
package decode

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/midbel/graph"
)

const (
	Tab       = '\t'
	Space     = ' '
	Comma     = ','
	Semicolon = ';'
)

// Delimiter maps a delimiter name to its rune. Unknown names fall back
// to tab.
func Delimiter(name string) rune {
	switch name {
	case "space":
		return Space
	case "comma":
		return Comma
	case "semicolon":
		return Semicolon
	default:
		return Tab
	}
}

func Series(r io.Reader, name string, xcol, ycol int, delim rune) (graph.Series, error) {
	var s graph.Series
	pts, err := Points(r, xcol, ycol, delim)
	if err != nil {
		return s, err
	}
	s.Name = name
	s.Points = pts
	return s, nil
}

// Points reads delimited rows and extracts the two 0-based columns as
// coordinates. Only read failures surface as errors.
func Points(r io.Reader, xcol, ycol int, delim rune) ([]graph.Point, error) {
	if xcol < 0 {
		xcol = 0
	}
	if ycol < 0 {
		ycol = 1
	}
	var (
		pts  []graph.Point
		scan = bufio.NewScanner(r)
	)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := splitLine(line, delim)
		if len(cols) <= xcol || len(cols) <= ycol {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(cols[xcol]), 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(cols[ycol]), 64)
		if err != nil {
			continue
		}
		pts = append(pts, graph.NewPoint(x, y))
	}
	return pts, scan.Err()
}

// PointsString parses text handed over by a host that escapes line and
// tab breaks, such as a form field.
func PointsString(text string, xcol, ycol int, delim rune) ([]graph.Point, error) {
	text = strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(text)
	return Points(strings.NewReader(text), xcol, ycol, delim)
}

func splitLine(line string, delim rune) []string {
	if delim == Space {
		return strings.Fields(line)
	}
	return strings.Split(line, string(delim))
}
