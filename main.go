package main

import "github.com/aeroquery/aeroquery/cmd"

func main() {
	cmd.Execute()
}
