package main

import "github.com/iksnae/listcorpus/cmd"

func main() {
	cmd.Execute()
}
