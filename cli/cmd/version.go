package cmd

import (
	"fmt"
	"io"

	"github.com/ardnew/dlog/pkg"
)

// Version prints the module version.
type Version struct{}

// Run executes the version command.
func (Version) Run(out io.Writer) error {
	_, err := fmt.Fprintln(out, pkg.Name, pkg.Version())

	return err
}
