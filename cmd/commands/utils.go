package commands

import (
	"fmt"
	"os"

	"memoria/pkg/logger"
)

const helpText = `memoria - memories gallery backend

usage:
  memoria run <config.yml>   start the server
  memoria version            print the version
  memoria help               show this message
`

func ExitOnError(err error) {
	logger.Error("memoria error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Print(helpText) //nolint
}
