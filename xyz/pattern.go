// Package xyz stores rendered map cells as individual files with paths like
// "/maps/town/{y}/{x}.png".
package xyz

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/eak1mov/go-tilemap/tile"
)

var ErrInvalidPattern = errors.New("tilemap: invalid file pattern")

var placeholders = []string{"{x}", "{y}"}

// layout maps cell positions to file paths and back.
type layout struct {
	pattern string
	matcher *regexp.Regexp
}

func newLayout(pattern string) (layout, error) {
	for _, p := range placeholders {
		if !strings.Contains(pattern, p) {
			return layout{}, fmt.Errorf("%w: placeholder %v not found", ErrInvalidPattern, p)
		}
	}

	expr := regexp.QuoteMeta(pattern)
	expr = strings.ReplaceAll(expr, regexp.QuoteMeta("{x}"), `(?P<x>\d+)`)
	expr = strings.ReplaceAll(expr, regexp.QuoteMeta("{y}"), `(?P<y>\d+)`)
	matcher, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		return layout{}, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return layout{pattern, matcher}, nil
}

func (l layout) path(p tile.Point) string {
	return strings.NewReplacer(
		"{x}", strconv.Itoa(p.X),
		"{y}", strconv.Itoa(p.Y),
	).Replace(l.pattern)
}

// point parses a path produced by path. Paths that do not follow the pattern
// or hold coordinates out of range are rejected.
func (l layout) point(filePath string) (tile.Point, bool) {
	matches := l.matcher.FindStringSubmatch(filePath)
	if matches == nil {
		return tile.Point{}, false
	}
	x, errX := strconv.ParseUint(matches[l.matcher.SubexpIndex("x")], 10, 16)
	y, errY := strconv.ParseUint(matches[l.matcher.SubexpIndex("y")], 10, 16)
	if errX != nil || errY != nil {
		return tile.Point{}, false
	}
	return tile.Point{X: int(x), Y: int(y)}, true
}

// rootDir is the deepest directory containing every path of the layout.
func (l layout) rootDir() string {
	path0 := l.path(tile.Point{X: 0, Y: 0})
	path1 := l.path(tile.Point{X: 1, Y: 1})
	for path0 != path1 {
		path0 = filepath.Dir(path0)
		path1 = filepath.Dir(path1)
	}
	return path0
}
