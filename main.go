package main

import "asset-reconciler/cmd"

func main() {
	cmd.Execute()
}
