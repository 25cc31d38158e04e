package main

import "github.com/dcosic/portfolio/internal/cli"

func main() {
	cli.Execute()
}
