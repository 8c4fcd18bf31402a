package main

import (
	"github.com/pokecollect/pokecollect/internal/cli"
)

func main() {
	cli.Execute()
}
