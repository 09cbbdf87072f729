package main

import (
	"os"

	"github.com/ideal-jiwon/gongbu/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
