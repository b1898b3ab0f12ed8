package main

import "logistics_dashboard/internal/cli"

func main() {
	cli.Execute()
}
