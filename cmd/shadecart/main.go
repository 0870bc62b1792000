// Command shadecart is the device client: it keeps the cart in a local
// bbolt file and places orders against the ShadeCart API.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}
