package main

import "github.com/MeKo-Tech/flatten/cmd/flatten/cmd"

func main() {
	cmd.Execute()
}
