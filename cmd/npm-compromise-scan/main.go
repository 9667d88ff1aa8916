package main

import "github.com/JockByTheSea/npm-compromise-scan/internal/cli"

func main() {
	cli.Execute()
}
