package main

import "travel-planner/internal/cli"

func main() {
	cli.Execute()
}
