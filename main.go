package main

import "liveaudit/cmd"

func main() {
	cmd.Execute()
}
