// Command sapling runs the sapling demo scene in a window or headless.
package main

func main() {
	Execute()
}
