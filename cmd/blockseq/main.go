// Command blockseq builds, evaluates and replays block sequences.
package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/blockseq/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
