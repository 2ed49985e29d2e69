package main

import "url-reconciler/cmd"

func main() {
	cmd.Execute()
}
