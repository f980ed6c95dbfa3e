package instar

import "github.com/pkg/errors"

// ErrConfigurationMismatch is returned by the first Iteration when weights are to be
// seeded from the corpus but the corpus does not hold exactly one exemplar per instar
// unit. It is fatal: fix the data and build a new trainer.
var ErrConfigurationMismatch = errors.New("corpus size does not match instar unit count")
