// Command inputguard validates text the way a configured input field does.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, "inputguard:", err)
			os.Exit(2)
		}
		os.Exit(1)
	}
}
