// Command onlyargsgen generates command line parsers for structs marked
// with the onlyargs:derive directive.
//
// Run it from a go:generate line next to the marked struct:
//
//	//go:generate go run github.com/parasyte/onlyargs/cmd/onlyargsgen -version 0.1.0 -description "Greets everyone"
//
// The application name defaults to the final element of the module path.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/parasyte/onlyargs"
	"github.com/parasyte/onlyargs/derive"
)

func main() {
	dir := flag.String("dir", ".", "directory to scan for marked structs")
	name := flag.String("name", "", "application name, defaults to the module name")
	version := flag.String("version", "", "application version")
	description := flag.String("description", "", "one line application description")
	flag.Parse()

	app := onlyargs.App{
		Name:        *name,
		Version:     *version,
		Description: *description,
	}
	if err := derive.Generate(*dir, app); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
