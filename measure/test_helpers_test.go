package measure_test

import "github.com/katalvlaran/planar/coordseq"

// factories enumerates both sequence encodings so every measure property
// is exercised representation-blind.
var factories = map[string]coordseq.Factory{
	"array":  coordseq.ArrayFactory{},
	"packed": coordseq.PackedFactory{},
}
