package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/JoseManuelVargas/ud-mcic-db-t4/internal/cli"
)

func main() {
	cmd := cli.RootCmd(afero.NewOsFs())
	if err := cmd.Execute(); err != nil {
		// Exit with error code 1 if command execution fails
		os.Exit(1)
	}
}
