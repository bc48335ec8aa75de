package main

import (
	"log"

	"github.com/BRAVO68WEB/greeter/cmd/greeter"
)

func main() {
	if err := greeter.Execute(); err != nil {
		log.Fatal(err)
	}
}
