// SPDX-License-Identifier: MIT

// Command lvledge computes state levels and extracts logical edges from
// sampled two-state signals stored as CSV.
//
//	lvledge gen --periods 4 > train.csv
//	lvledge levels -i train.csv --histogram
//	lvledge edges -i train.csv --point intermediate
package main

func main() {
	Execute()
}
