package main

import (
	"github.com/NVIDIA/vercheck/pkg/cli"
)

func main() {
	cli.Execute()
}
