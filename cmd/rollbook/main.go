package main

import (
	"github.com/ssharma/rollbook/cmd/rollbook/cmd"
)

func main() {
	cmd.Execute()
}
