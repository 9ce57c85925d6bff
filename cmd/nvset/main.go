package main

import (
	"github.com/NVIDIA/nvidia-settings-api/pkg/cli"
)

func main() {
	cli.Execute()
}
