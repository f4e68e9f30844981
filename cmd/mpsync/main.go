package main

import (
	"github.com/selim/mpsync/internal/cli"
)

func main() {
	cli.Execute()
}
