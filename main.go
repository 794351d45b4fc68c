package main

import "github.com/Srialok01/healthcheck/cmd"

func main() {
	cmd.Execute()
}
