// Command minemind is a headless Minesweeper solver: it plays batches of
// simulated games with a configurable safe-cell strategy and reports (or
// persists) how each strategy performs.
package main

func main() {
	Execute()
}
