package main

import "github.com/salchaD-27/preflight-check/cmd/preflight-check/cmd"

func main() {
	cmd.Execute()
}
