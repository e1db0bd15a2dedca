// Command skilltree views, inspects and replays skill tree graphs.
package main

import "os"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
