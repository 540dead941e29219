package utils

import (
	"fmt"
	"math"
)

// Returns the average of all given numbers n
func Average(n ...int) int {
	if len(n) == 0 {
		return 0
	}

	// Sum all numbers
	var sum int
	for _, num := range n {
		sum += num
	}

	// Divide sum by total numbers
	return sum / len(n)
}

// Clamps v to the [0, 255] range of a color channel.
// The fractional part is dropped (truncation toward zero).
func ClampByte(v float32) byte {
	switch {
	case v >= 255:
		return 255
	case v <= 0 || math.IsNaN(float64(v)):
		return 0
	}
	return byte(v)
}

// Print a Colored Block in terminal
func ColoredBlock(block string, red int, green int, blue int) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", red, green, blue, block)
}
