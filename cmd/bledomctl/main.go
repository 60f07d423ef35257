// bledomctl - CLI for controlling ELK-BLEDOM BLE RGB light controllers.
package main

import (
	"github.com/ledkit/bledom/internal/cli"
)

func main() {
	cli.Execute()
}
