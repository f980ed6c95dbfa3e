package cpn

import "encoding/json"
import "io"
import "math"
import "os"

import "github.com/andybalholm/brotli"
import "github.com/pkg/errors"

import "github.com/neurlang/counterprop/matrix"

type weightsJson struct {
	InputCount  int        `json:"input_count"`
	InstarCount int        `json:"instar_count"`
	Weights     [][]weight `json:"weights"`
}

// weight is a json number, or one of the strings "+Inf", "-Inf" and "NaN" which
// json numbers cannot express.
type weight float64

func (w weight) MarshalJSON() ([]byte, error) {
	switch v := float64(w); {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	default:
		return json.Marshal(v)
	}
}

func (w *weight) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"NaN"`:
		*w = weight(math.NaN())
	case `"+Inf"`:
		*w = weight(math.Inf(1))
	case `"-Inf"`:
		*w = weight(math.Inf(-1))
	default:
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*w = weight(v)
	}
	return nil
}

func toWeights(rows [][]float64) [][]weight {
	o := make([][]weight, len(rows))
	for r, row := range rows {
		o[r] = make([]weight, len(row))
		for c, v := range row {
			o[r][c] = weight(v)
		}
	}
	return o
}

func fromWeights(rows [][]weight) [][]float64 {
	o := make([][]float64, len(rows))
	for r, row := range rows {
		o[r] = make([]float64, len(row))
		for c, v := range row {
			o[r][c] = float64(v)
		}
	}
	return o
}

// WriteCompressedWeightsToFile writes the instar weights to a brotli compressed json file
func (n *Network) WriteCompressedWeightsToFile(name string) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	err = n.WriteCompressedWeights(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteCompressedWeights writes the instar weights to a writer. Non-finite weights,
// which a diverging learning rate can produce, are stored as "+Inf", "-Inf" or "NaN".
func (n *Network) WriteCompressedWeights(w io.Writer) error {
	bw := brotli.NewWriterLevel(w, brotli.DefaultCompression)
	err := json.NewEncoder(bw).Encode(weightsJson{
		InputCount:  n.InputCount(),
		InstarCount: n.InstarCount(),
		Weights:     toWeights(n.weights.Rows2D()),
	})
	if err != nil {
		bw.Close()
		return errors.Wrap(err, "encode weights")
	}
	return bw.Close()
}

// ReadCompressedWeightsFromFile reads the instar weights from a brotli compressed json file
func (n *Network) ReadCompressedWeightsFromFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return n.ReadCompressedWeights(file)
}

// ReadCompressedWeights reads the instar weights from a reader. The stored dimensions
// must match the network; the weights are left untouched otherwise.
func (n *Network) ReadCompressedWeights(r io.Reader) error {
	var wj weightsJson
	if err := json.NewDecoder(brotli.NewReader(r)).Decode(&wj); err != nil {
		return errors.Wrap(err, "decode weights")
	}
	if wj.InputCount != n.InputCount() || wj.InstarCount != n.InstarCount() {
		return errors.Wrapf(matrix.ErrShape, "stored network is %dx%d, network is %dx%d",
			wj.InputCount, wj.InstarCount, n.InputCount(), n.InstarCount())
	}
	return n.weights.Load(fromWeights(wj.Weights))
}
