package main

import (
	"os"

	"github.com/oc2pg/demoseed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
