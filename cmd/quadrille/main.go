// Command quadrille generates polyomino pieces and composes them on boards.
package main

import "github.com/katalvlaran/quadrille/internal/cli"

func main() {
	cli.Execute()
}
