package main

import "github.com/deploymenttheory/go-acpi/cmd"

func main() {
	cmd.Execute()
}
