package main

import cmd "github.com/kerbaras/lectures/cmd/lectures"

func main() {
	cmd.Execute()
}
