package main

import (
	"github.com/releng/build-redirect/pkg/cli"
)

func main() {
	cli.Execute()
}
