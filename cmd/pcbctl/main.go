// Command pcbctl compares linked-list and sibling-linked PCB tables.
package main

func main() {
	execute()
}
