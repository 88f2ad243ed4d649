package main

import "rnntrain/cmd"

func main() {
	cmd.Execute()
}
