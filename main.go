package main

import "winctl/cmd"

func main() {
	cmd.Execute()
}
