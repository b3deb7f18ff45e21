// Binary ip6range
package main

import "github.com/zlobste/ip6range/internal/cli"

func main() {
	cli.Execute()
}
