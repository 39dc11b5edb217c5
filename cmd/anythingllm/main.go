package main

import (
	"os"

	"github.com/hashicorp-forge/anythingllm/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
