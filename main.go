package main

import (
	"os"

	"com.bradleytenuta/deauth/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
