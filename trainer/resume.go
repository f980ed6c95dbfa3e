package trainer

import "github.com/neurlang/counterprop/net/cpn"

// Resume loads previously saved weights into net when resume is set, so training
// continues from them rather than from fresh weights.
func Resume(net *cpn.Network, resume *bool, dstmodel *string) error {
	if resume != nil && *resume && dstmodel != nil && *dstmodel != "" {
		return net.ReadCompressedWeightsFromFile(*dstmodel)
	}
	return nil
}
