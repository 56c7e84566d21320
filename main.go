package main

import "xml-compare-api/cmd"

func main() {
	cmd.Execute()
}
