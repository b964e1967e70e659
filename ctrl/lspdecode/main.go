package main

import (
	"log"
	"os"

	"github.com/celskeggs/lightspeed/ctrl/util"
	"github.com/celskeggs/lightspeed/lsp/render"
)

func main() {
	if len(os.Args) != 2 {
		log.Printf("Usage: %s <encoded Pascal source file>", os.Args[0])
		return
	}
	if err := util.DecodeFile(os.Args[1], os.Stdout, render.ModeRecords); err != nil {
		log.Fatal(err)
	}
}
