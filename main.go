package main

import (
	"github.com/Alturino/audiophile/cmd"
)

func main() {
	cmd.Start()
}
