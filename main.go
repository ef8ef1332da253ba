package main

import "github.com/jsphweid/salamidex/cmd"

func main() {
	cmd.Execute()
}
