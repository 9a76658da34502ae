package main

import "influencer-scout/cmd"

func main() {
	cmd.Execute()
}
