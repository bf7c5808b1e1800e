package main

import "github.com/aalvaropc/carlens/internal/cli"

func main() {
	cli.Execute()
}
