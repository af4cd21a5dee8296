// Command ringmix decrypts a grove-positioning sequence by ring mixing and
// prints the grove-coordinate sum.
package main

import "github.com/katalvlaran/ringmix/cmd/ringmix/cmd"

func main() {
	cmd.Execute()
}
