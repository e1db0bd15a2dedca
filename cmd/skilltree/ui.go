package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/phanxgames/skilltree"
)

var (
	brand  = color.New(color.FgHiYellow, color.Bold)
	subtle = color.New(color.FgHiBlack)
	info   = color.New(color.FgCyan)
	good   = color.New(color.FgGreen)
	bad    = color.New(color.FgRed)
)

// stateColor picks the terminal colour matching a node's frame tint.
func stateColor(s skilltree.NodeState) *color.Color {
	switch s {
	case skilltree.StateUnlocked:
		return brand
	case skilltree.StateAffordable:
		return good
	case skilltree.StateAvailable:
		return bad
	default:
		return subtle
	}
}

// table prints an aligned two-or-more column table.
func table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], len(cell))
			}
		}
	}

	var head, sep strings.Builder
	head.WriteString("  ")
	sep.WriteString("  ")
	for i, h := range headers {
		fmt.Fprintf(&head, "%-*s  ", widths[i], h)
		sep.WriteString(strings.Repeat("─", widths[i]) + "  ")
	}
	subtle.Println(head.String())
	subtle.Println(sep.String())

	for _, row := range rows {
		line := "  "
		for i, cell := range row {
			if i < len(widths) {
				line += fmt.Sprintf("%-*s  ", widths[i], cell)
			}
		}
		fmt.Println(line)
	}
}
