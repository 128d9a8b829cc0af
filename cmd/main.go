package main

import cmd "github.com/mastersamasama/html-comic-reader-generator/cmd/mangashelf"

func main() {
	cmd.Execute()
}
