package main

import (
	"github.com/they4kman/minedots/cmd"
)

func main() {
	cmd.Execute()
}
