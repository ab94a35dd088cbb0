/*
Copyright © 2024 Tim Parisi
*/
package main

import "github.com/tim-parisi/100-dice-simulation/cmd"

func main() {
	cmd.Execute()
}
