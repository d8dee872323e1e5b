// Command rabbit-pool builds a confirm-channel pool for a discovered
// RabbitMQ cluster and reports which nodes made it into the pool.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
