// main.go
package main

import "review-listing/cmd"

func main() {
	cmd.Execute()
}
