package main

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/celskeggs/lightspeed/ctrl/util"
	"github.com/celskeggs/lightspeed/lsp/render"
	"github.com/hashicorp/go-multierror"
)

// convert writes the reconstructed source for input next to it, as <input>.p. A file
// that fails to decode leaves no output behind.
func convert(input string) (err error) {
	output := input + ".p"
	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		if e := out.Close(); e != nil {
			err = multierror.Append(err, e)
		}
		if err != nil {
			if e := os.Remove(output); e != nil {
				err = multierror.Append(err, e)
			}
		}
	}()
	if err := util.DecodeFile(input, out, render.ModeText); err != nil {
		return err
	}
	log.Printf("Wrote %s", output)
	return nil
}

// run converts every input concurrently and returns all failures together.
func run(inputs []string) error {
	var (
		result  *multierror.Error
		present []string
	)
	for _, input := range inputs {
		if !util.Exists(input) {
			result = multierror.Append(result, fmt.Errorf("no such file: %s", input))
		} else {
			present = append(present, input)
		}
	}
	var (
		wg   sync.WaitGroup
		lock sync.Mutex
	)
	for _, input := range present {
		wg.Add(1)
		go func(input string) {
			defer wg.Done()
			if err := convert(input); err != nil {
				lock.Lock()
				result = multierror.Append(result, err)
				lock.Unlock()
			}
		}(input)
	}
	wg.Wait()
	return result.ErrorOrNil()
}

func main() {
	if len(os.Args) < 2 {
		log.Printf("Usage: %s <encoded Pascal source file> [<encoded Pascal source file> [...]]", os.Args[0])
		return
	}
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
