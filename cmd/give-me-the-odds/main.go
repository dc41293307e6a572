package main

import (
	"github.com/andrescamacho/give-me-the-odds/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
