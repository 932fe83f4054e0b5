package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Println(fmt.Errorf("error: %w", err))
		os.Exit(1)
	}
}
