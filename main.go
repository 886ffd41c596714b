package main

import "github.com/KaramelBytes/docmerge-cli/cmd"

func main() {
	cmd.Execute()
}
