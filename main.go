package main

import "github.com/sortxml/sortxml/cmd"

func main() {
	cmd.Execute()
}
