package main

import (
	"os"

	"github.com/dixieflatline76/dayshift/cmd/dayshift/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
