package main

import "asset-loader/cmd"

func main() {
	cmd.Execute()
}
