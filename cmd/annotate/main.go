package main

import (
	"os"

	"measurement-annotation-service/cmd/annotate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
