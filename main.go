/*
Copyright © 2026 dexbattle authors
*/
package main

import "github.com/urdoggydeewata-star/dexbattle/cmd"

func main() {
	cmd.Execute()
}
