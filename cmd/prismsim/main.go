package main

import (
	"github.com/prismhw/prismsim/cmd/prismsim/cmd"
)

func main() {
	cmd.Execute()
}
