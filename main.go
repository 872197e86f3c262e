// Package main is the entry point of pairingcheck, a static checker that
// reports source files whose paired calls (malloc/free, init/destroy,
// add/remove) do not balance.
package main

import "pairingcheck/cmd"

func main() {
	cmd.Execute()
}
