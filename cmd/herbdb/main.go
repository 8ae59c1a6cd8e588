// Package main provides the herbdb CLI application.
// herbdb keeps a catalog of medicinal plants and their uses.
package main

import "github.com/gnames/herbdb/cmd"

func main() {
	cmd.Execute()
}
