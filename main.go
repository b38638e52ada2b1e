// Package main is the entry point for the jdemo CLI.
package main

import "jdemo.dev/pkg/jdemo/cmd"

func main() {
	cmd.Execute()
}
