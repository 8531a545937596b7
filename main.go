package main

import "github.com/pgrowth/tppgUtil/cmd"

func main() {
	cmd.Execute()
}
