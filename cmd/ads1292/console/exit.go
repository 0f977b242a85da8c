package console

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// Exit formats the message and wraps it in a cli exit coder so the app
// terminates with code.
func Exit(code int, format string, args ...any) cli.ExitCoder {
	return cli.Exit(fmt.Sprintf(format, args...), code)
}
