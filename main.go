package main

import "github.com/iksnae/labchat/cmd"

func main() {
	cmd.Execute()
}
