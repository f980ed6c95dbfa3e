// Package trainer provides the trainer contract and the host side training orchestration
// for counter-propagation networks: the iteration loop, stopping strategy, evaluation of
// the current weights over a corpus, and resuming from saved weights.
package trainer
