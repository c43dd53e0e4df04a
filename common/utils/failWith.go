package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
)

// ErrorChain lists the messages of err and of every error it wraps, outermost first.
func ErrorChain(err error) []string {
	chain := make([]string, 0)

	for err != nil {
		msg := err.Error()
		cause := errors.Unwrap(err)

		if cause != nil {
			if msg == cause.Error() {
				// stack-only wrapper
				msg = ""
			} else {
				msg = strings.TrimSuffix(msg, ": "+cause.Error())
			}
		}

		if msg != "" {
			chain = append(chain, msg)
		}

		err = cause
	}

	return chain
}

func printChain(err error) string {
	var b strings.Builder
	for i, msg := range ErrorChain(err) {
		b.WriteString(strings.Repeat("  ", i))
		if i > 0 {
			b.WriteString("└ ")
		}
		b.WriteString(msg)
		b.WriteString("\n")
	}
	return b.String()
}

func FailWith(err error) {
	command := strings.Join(os.Args, " ")

	fmt.Println("")
	fmt.Println(chalk.Red.Color("❌  An error occurred."))
	fmt.Println("")
	fmt.Println(chalk.Dim.TextStyle(command))
	fmt.Print(printChain(err))
	fmt.Println("")

	if IsDebug() {
		fmt.Printf("%+v\n", errors.Cause(err))
	}

	os.Exit(1)
}

func WarnWith(err error) {
	fmt.Println("")
	fmt.Println(chalk.Yellow.Color("⚠️  Warning"))
	fmt.Println("")

	fmt.Print(printChain(err))

	fmt.Println("")
}
