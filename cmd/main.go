package main

import (
	"log"
	"os"

	"github.com/tripventure/tripventure-go/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		log.Fatalf("tripventure: %v", err)
	}
}
