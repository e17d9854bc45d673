package main

import "github.com/yotsuba-lab/profile-cards/cmd"

func main() {
	cmd.Execute()
}
