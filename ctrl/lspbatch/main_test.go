package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/celskeggs/lightspeed/lsp/token"
	"github.com/hashicorp/go-multierror"
)

func TestConvertInParallel(t *testing.T) {
	dir := t.TempDir()
	names := []string{"A", "B", "C", "D"}
	var inputs []string
	for _, name := range names {
		path := filepath.Join(dir, name+".lsp")
		data := append([]byte{token.OpProgram, 0, 0, 0, 0, 0, byte(len(name))}, name...)
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatal(err)
		}
		inputs = append(inputs, path)
	}
	var wg sync.WaitGroup
	errs := make([]error, len(inputs))
	for i, input := range inputs {
		wg.Add(1)
		go func(i int, input string) {
			defer wg.Done()
			errs[i] = convert(input)
		}(i, input)
	}
	wg.Wait()
	for i, input := range inputs {
		if errs[i] != nil {
			t.Errorf("%s: %v", input, errs[i])
			continue
		}
		out, err := os.ReadFile(input + ".p")
		if err != nil {
			t.Fatal(err)
		}
		want := "{ Pascal source code from " + names[i] + ".lsp }\nprogram " + names[i]
		if string(out) != want {
			t.Errorf("%s: got %q, want %q", input, out, want)
		}
	}
}

func TestConvertTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.lsp")
	if err := os.WriteFile(path, []byte{token.OpProgram, 0}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := convert(path); err == nil {
		t.Error("expected truncation to be reported")
	}
	if _, err := os.Stat(path + ".p"); !os.IsNotExist(err) {
		t.Errorf("partial output left behind: %v", err)
	}
}

func TestRunCollectsEveryFailure(t *testing.T) {
	dir := t.TempDir()
	var inputs []string
	for i := 0; i < 50; i++ {
		bad := filepath.Join(dir, fmt.Sprintf("bad%d.lsp", i))
		if err := os.WriteFile(bad, []byte{token.OpProgram, 0}, 0644); err != nil {
			t.Fatal(err)
		}
		inputs = append(inputs, bad, filepath.Join(dir, fmt.Sprintf("missing%d.lsp", i)))
	}
	good := filepath.Join(dir, "good.lsp")
	if err := os.WriteFile(good, []byte{token.OpProgram, 0, 0, 0, 0, 0, 1, 'G'}, 0644); err != nil {
		t.Fatal(err)
	}
	inputs = append(inputs, good)

	err := run(inputs)
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("expected a multierror, got %v", err)
	}
	if len(merr.Errors) != 100 {
		t.Errorf("expected 100 failures, got %d", len(merr.Errors))
	}
	if _, err := os.Stat(good + ".p"); err != nil {
		t.Errorf("good input was not converted: %v", err)
	}
	if run([]string{good}) != nil {
		t.Error("expected a clean run for a valid input")
	}
}
