// Command termide is a modal terminal text editor.
package main

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/claudio/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
