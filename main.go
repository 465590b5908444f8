package main

import "github.com/nijaru/yt-kb/cmd"

func main() {
	cmd.Execute()
}
