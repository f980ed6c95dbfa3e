// Package main provides a program printing the winning instar unit of a trained
// counter-propagation network for each input vector given on the command line,
// e.g. infer_instar -dstmodel output.json.br 0,1 1,1
package main
