package utils

import (
	"fmt"
	"log"

	"github.com/ttacon/chalk"
)

// Check panics when err is set; reserved for broken invariants, not for user input.
func Check(err error, msg string) {
	if err != nil {
		log.Print(chalk.Red.Color(msg))
		log.Panicln(err)
	}
}

func Assert(ok bool, msg string) {
	if !ok {
		log.Print(chalk.Red.Color(msg))
		log.Panic(msg)
	}
}

func Assertf(ok bool, format string, args ...interface{}) {
	if !ok {
		Assert(false, fmt.Sprintf(format, args...))
	}
}
