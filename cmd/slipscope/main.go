package main

import "github.com/emiliopalmerini/slipscope/internal/cli"

func main() {
	cli.Execute()
}
