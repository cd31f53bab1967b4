package main

import (
	"ethstore/cmd"
	"fmt"
	"os"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ethstore: %s\n", err)
		os.Exit(1)
	}
}
