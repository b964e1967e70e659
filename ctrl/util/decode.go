package util

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/celskeggs/lightspeed/lsp/decode"
	"github.com/celskeggs/lightspeed/lsp/render"
	"github.com/celskeggs/lightspeed/lsp/token"
)

// DecodeFile decodes the token stream in path onto output, logging each anomaly to
// stderr as it is found. Only a truncated stream or an I/O failure is returned.
func DecodeFile(path string, output io.Writer, mode render.Mode) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if mode == render.ModeText {
		if _, err := io.WriteString(output, render.Header(filepath.Base(path))); err != nil {
			return err
		}
	}
	tokenCh := make(chan token.Token)
	diagCh := make(chan decode.Diagnostic)
	logDone := make(chan struct{})
	go func() {
		defer close(logDone)
		for diag := range diagCh {
			log.Printf("ERROR: %s: %v", path, diag)
		}
	}()
	var streamErr error
	go func() {
		defer close(tokenCh)
		defer close(diagCh)
		streamErr = decode.Stream(data, tokenCh, diagCh)
	}()
	renderErr := render.Renderer(tokenCh, output, mode)
	if renderErr != nil {
		// keep draining so the decoder goroutine can finish
		for range tokenCh {
		}
	}
	<-logDone
	if streamErr != nil {
		return fmt.Errorf("%s: %w", path, streamErr)
	}
	return renderErr
}
