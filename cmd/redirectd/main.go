package main

import (
	"log"

	"github.com/releng/build-redirect/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
