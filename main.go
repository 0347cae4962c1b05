package main

import "music-extractor/cmd"

func main() {
	cmd.Execute()
}
