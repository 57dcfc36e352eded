package main

import "github.com/pydis/site-api/cmd"

func main() {
	cmd.Execute()
}
