package main

import "github.com/ytget/audion/cmd"

func main() {
	cmd.Execute()
}
