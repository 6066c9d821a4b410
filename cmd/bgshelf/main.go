package main

import "github.com/bgshelf/bgshelf/internal/cli"

func main() {
	cli.Execute()
}
