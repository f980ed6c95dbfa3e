// Package main provides a program training the instar layer of a counter-propagation
// network by competitive learning. Without a configuration file it learns the four
// xor exemplars, one competitive unit each, and saves the weights for infer_instar.
package main
