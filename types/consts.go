package types

// floatCmpEpsilon is the tolerance used for float comparisons across the
// package (vector and plane normalization, ray-parallel-to-slab checks).
const floatCmpEpsilon = 1e-6
