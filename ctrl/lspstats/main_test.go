package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/celskeggs/lightspeed/lsp/decode"
	"github.com/celskeggs/lightspeed/lsp/stats"
	"github.com/celskeggs/lightspeed/lsp/token"
)

func TestFormatCensus(t *testing.T) {
	tokens, diags, err := decode.DecodeAll([]byte{token.OpGets, token.OpGets, 0x01, token.OpEnd, 0})
	if err != nil {
		t.Fatal(err)
	}
	c := stats.NewCensus()
	c.Add(tokens, diags)
	text := formatCensus("Demo.lsp", c, errors.New("truncated here"))
	for _, want := range []string{"OPCODE", "SINCE", "20", ":=", "UNKNOWN", "4 tokens, 3 distinct opcodes", "1 anomalies", "truncated here"} {
		if !strings.Contains(text, want) {
			t.Errorf("census output is missing %q:\n%s", want, text)
		}
	}
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.Contains(line, ":="):
			if !strings.HasSuffix(strings.TrimSpace(line), "record") {
				t.Errorf("operator row should be marked record: %q", line)
			}
		case strings.Contains(line, "end"):
			if !strings.HasSuffix(strings.TrimSpace(line), "text") {
				t.Errorf("end row should be marked text: %q", line)
			}
		case strings.Contains(line, "UNKNOWN"):
			if !strings.HasSuffix(strings.TrimSpace(line), "-") {
				t.Errorf("unknown row should have no generation: %q", line)
			}
		}
	}
}
