// gclidtime - GCLID Timestamp Recovery Tool
//
// gclidtime decodes a Google Click ID and reports the most plausible epoch
// timestamp embedded in it, in UTC and in a configured local time zone.
package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/ccollicutt/gclidtime/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
