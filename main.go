package main

import "github.com/notargets/easymesh/cmd"

func main() {
	cmd.Execute()
}
