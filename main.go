package main

import "github.com/LegacyCodeHQ/cpexpand/cmd"

func main() {
	cmd.Execute()
}
