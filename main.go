/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/okmtz/tsk-cli/cmd"

func main() {
	cmd.Execute()
}
