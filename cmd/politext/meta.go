package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/politext"
)

// Run executes the meta command.
func (c *MetaCmd) Run(deps *Dependencies) error {
	html, _, err := readInput(deps, c.Path, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", politext.ErrorMessage(err))
		return err
	}

	meta, err := deps.Metadata.Metadata(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", politext.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
