// Command u16cat transcodes and validates UTF-16 encoded files.
package main

func main() {
	execute()
}
