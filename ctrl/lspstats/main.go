package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/celskeggs/lightspeed/ctrl/util"
	"github.com/celskeggs/lightspeed/lsp/decode"
	"github.com/celskeggs/lightspeed/lsp/stats"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	unknownStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6B7280")).
			Padding(0, 1)
)

func formatCensus(name string, c *stats.Census, truncated error) string {
	var lines []string
	lines = append(lines, headerStyle.Render(fmt.Sprintf("%-6s %-14s %8s  %s", "OPCODE", "NAME", "COUNT", "SINCE")))
	for _, entry := range c.Sorted() {
		line := fmt.Sprintf("%02X     %-14s %8d  %v", entry.Code, entry.Name, entry.Count, entry.Since)
		if entry.Known {
			lines = append(lines, line)
		} else {
			lines = append(lines, unknownStyle.Render(line))
		}
	}
	summary := []string{
		fmt.Sprintf("%s: %d tokens, %d distinct opcodes", name, c.Total, len(c.Opcodes)),
	}
	if n := c.AnomalyCount(); n > 0 {
		summary = append(summary, unknownStyle.Render(fmt.Sprintf("%d anomalies", n)))
	} else {
		summary = append(summary, mutedStyle.Render("no anomalies"))
	}
	if truncated != nil {
		summary = append(summary, unknownStyle.Render(truncated.Error()))
	}
	return strings.Join(lines, "\n") + "\n" + summaryStyle.Render(strings.Join(summary, "\n")) + "\n"
}

func main() {
	inputs := util.Positional("--chart")
	if len(inputs) != 1 {
		log.Printf("Usage: %s <encoded Pascal source file> [--chart <out.png>] [--display]", os.Args[0])
		return
	}
	data, err := os.ReadFile(inputs[0])
	if err != nil {
		log.Fatal(err)
	}
	// a truncated stream still has a useful census up to the failure point
	tokens, diags, truncated := decode.DecodeAll(data)
	for _, diag := range diags {
		log.Printf("ERROR: %v", diag)
	}
	census := stats.NewCensus()
	census.Add(tokens, diags)
	name := filepath.Base(inputs[0])
	fmt.Print(formatCensus(name, census, truncated))

	chartPath, wantChart := util.ArgValue("--chart")
	display := util.HasArg("--display")
	if !wantChart && !display {
		return
	}
	p, err := stats.Chart(census, "Opcode frequency: "+name)
	if err != nil {
		log.Fatal(err)
	}
	width, height := stats.ChartSize(census)
	if wantChart {
		if err := stats.SavePlot(p, width, height, chartPath); err != nil {
			log.Fatal(err)
		}
	}
	if display {
		if err := DisplayPlot(p, width, height); err != nil {
			log.Fatal(err)
		}
	}
}
