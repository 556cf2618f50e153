package main

import (
	"fmt"
	"os"
)

// @title Puppy Growth API
// @version 1.0
// @description Seguimiento de peso de cachorros, estimación de peso adulto y raciones.
// @BasePath /
func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
