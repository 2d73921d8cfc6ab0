// Command quatc drives the quaternion-stream codec from the shell:
// compress a capture into a container file, decompress one back to a
// rawquat trajectory, or benchmark compression ratio and error.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
