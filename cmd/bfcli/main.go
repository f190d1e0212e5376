// Command bfcli is a thin CLI collaborator around the cipher package: it
// owns hex parsing, flag handling, and stdout/stderr plumbing, none of
// which belong to the core engine.
package main

func main() {
	Execute()
}
