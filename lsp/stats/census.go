package stats

import (
	"sort"

	"github.com/celskeggs/lightspeed/lsp/decode"
	"github.com/celskeggs/lightspeed/lsp/token"
)

// Census tallies what a decode pass found, for spotting unmapped or suspicious opcodes.
type Census struct {
	Total     int
	Opcodes   map[byte]int
	Kinds     map[token.Kind]int
	Anomalies map[decode.DiagKind]int
}

// Entry is one opcode's row. Since is zero for opcodes with no rule.
type Entry struct {
	Code  byte
	Name  string
	Count int
	Known bool
	Since decode.Generation
}

func NewCensus() *Census {
	return &Census{
		Opcodes:   map[byte]int{},
		Kinds:     map[token.Kind]int{},
		Anomalies: map[decode.DiagKind]int{},
	}
}

func (c *Census) Add(tokens []token.Token, diags []decode.Diagnostic) {
	for _, t := range tokens {
		c.Total += 1
		c.Opcodes[t.Code] += 1
		c.Kinds[t.Kind] += 1
	}
	for _, d := range diags {
		c.Anomalies[d.Kind] += 1
	}
}

func (c *Census) AnomalyCount() (n int) {
	for _, count := range c.Anomalies {
		n += count
	}
	return n
}

// Sorted lists opcodes by descending frequency, ties broken by opcode value.
func (c *Census) Sorted() []Entry {
	entries := make([]Entry, 0, len(c.Opcodes))
	for code, count := range c.Opcodes {
		rule, known := decode.Lookup(code)
		entries = append(entries, Entry{
			Code:  code,
			Name:  decode.Name(code),
			Count: count,
			Known: known,
			Since: rule.Since,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Code < entries[j].Code
	})
	return entries
}
