// Package ringmix decrypts grove-positioning sequences by ring mixing.
//
// A sequence of N signed integers is laid out on a circle. Every element,
// in its original order, is lifted out and dropped back in value mod (N-1)
// places further along; after R such passes the values 1000, 2000 and 3000
// places after the element 0 are the grove coordinates.
//
// Subpackages:
//
//	ring/       the circle: backward links plus a stride table of jumps J
//	            nodes forward, O(sqrt N) positional queries and splices
//	mixer/      rounds in original order, decryption key, grove extraction,
//	            part a / part b presets
//	sequence/   reading the integer sequence from text
//	config/     viper-backed CLI settings
//	logger/     logrus setup for the CLI
//	cmd/        the ringmix command
//
// Quick start:
//
//	sum, err := mixer.Solve([]int64{1, 2, -3, 3, -2, 0, 4}, mixer.PartB.Options()...)
//	// sum == 1623178306
package ringmix
