// Command chaikin animates Chaikin's corner-cutting algorithm in the
// terminal and exports refined curves as PNG images.
package main

func main() {
	Execute()
}
