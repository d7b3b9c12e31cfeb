// Package heatmap renders collision tables as textual heat maps.
//
// It is the display side of package collide: the core emits bucket-collision
// counts, this package maps each cell onto a light-to-dark shade ramp scaled
// by the table's largest cell. A panel places several labeled tables side by
// side, one per candidate compared against a common baseline.
//
// Example usage:
//
//	rnd := rand.New(rand.NewPCG(1, 2))
//	panel, _ := heatmap.Compare(collide.Identity(), collide.DefaultCatalog(rnd), 16)
//	heatmap.WritePanel(os.Stdout, panel)
package heatmap

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/collide"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'collide.heatmap'
func tracer() tracing.Trace {
	return tracing.Select("collide.heatmap")
}

// ramp maps relative cell weight onto glyphs, light to dark. The empty cell
// glyph is a blank so that structure stands out.
var ramp = []rune(" .:-=+*#%@")

// shade picks the ramp glyph for a cell count relative to the table maximum.
// Any non-zero count maps to a visible glyph.
func shade(count, maxCell int) rune {
	if count <= 0 || maxCell <= 0 {
		return ramp[0]
	}
	if count >= maxCell {
		return ramp[len(ramp)-1]
	}
	idx := (count*(len(ramp)-1) + maxCell - 1) / maxCell // round up
	return ramp[idx]
}

// Comparison pairs one candidate's collision table with its display label.
type Comparison struct {
	Label string
	Table *collide.Table
}

// Compare evaluates every catalog candidate against the baseline hash and
// returns the comparisons in catalog order, ready for WritePanel.
func Compare(baseline collide.Func, catalog *collide.Catalog, buckets int) ([]Comparison, error) {
	if catalog == nil {
		return nil, errors.New("no candidate catalog")
	}
	names := catalog.Names()
	panel := make([]Comparison, 0, len(names))
	for _, name := range names {
		h, found := catalog.Lookup(name)
		if !found {
			continue
		}
		tab, err := collide.Evaluate(baseline, h, buckets)
		if err != nil {
			return nil, fmt.Errorf("evaluating candidate %q: %w", name, err)
		}
		panel = append(panel, Comparison{Label: name, Table: tab})
	}
	return panel, nil
}

// Write renders one labeled collision table to w: the label on its own line,
// then one line per bucket row with one shade glyph per cell.
func Write(w io.Writer, tab *collide.Table, label string) error {
	if tab == nil {
		return errors.New("no collision table to render")
	}
	lines := blockLines(Comparison{Label: label, Table: tab})
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// gutter separates panel blocks.
const gutter = "   "

// WritePanel renders the comparisons side by side in one row, mirroring a
// row of subplots. Blocks may have differing bucket counts; shorter blocks
// are padded with blanks.
func WritePanel(w io.Writer, panel []Comparison) error {
	if len(panel) == 0 {
		return nil
	}
	blocks := make([][]string, len(panel))
	height := 0
	for i, cmp := range panel {
		if cmp.Table == nil {
			return fmt.Errorf("comparison %q has no collision table", cmp.Label)
		}
		blocks[i] = blockLines(cmp)
		if len(blocks[i]) > height {
			height = len(blocks[i])
		}
	}
	var sb strings.Builder
	for line := 0; line < height; line++ {
		for i, block := range blocks {
			if i > 0 {
				sb.WriteString(gutter)
			}
			if line < len(block) {
				sb.WriteString(block[line])
			} else {
				sb.WriteString(strings.Repeat(" ", blockWidth(panel[i])))
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	if err == nil {
		tracer().Debugf("rendered panel with %d comparisons, %d lines", len(panel), height)
	}
	return err
}

// blockLines lays out one comparison as label plus shaded rows, every line
// padded to the block width.
func blockLines(cmp Comparison) []string {
	b := cmp.Table.Buckets()
	maxCell := cmp.Table.Stats().MaxCell
	width := blockWidth(cmp)
	lines := make([]string, 0, b+1)
	lines = append(lines, pad(cmp.Label, width))
	var row strings.Builder
	for i := 0; i < b; i++ {
		row.Reset()
		for j := 0; j < b; j++ {
			row.WriteRune(shade(cmp.Table.At(i, j), maxCell))
		}
		lines = append(lines, pad(row.String(), width))
	}
	return lines
}

func blockWidth(cmp Comparison) int {
	width := cmp.Table.Buckets()
	if len(cmp.Label) > width {
		width = len(cmp.Label)
	}
	return width
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
