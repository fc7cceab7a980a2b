package main

import (
	"os"

	"github.com/remoteops/remotectl/internal/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil && !cmd.IsSilent(err) {
		cmd.PrintError("%v", err)
	}
	os.Exit(cmd.ExitCode(err))
}
