package binary

import "math/big"

// Bit-field helpers. Each treats buf as a single big-endian unsigned
// integer of len(buf) bytes, so packed fields that straddle byte
// boundaries (3-byte sample rates, 4.5-byte sample counts) are
// extracted without per-byte indexing.

// ShiftRight returns buf >> n. Bits above the low 64 are discarded.
func ShiftRight(buf []byte, n uint) uint64 {
	v := new(big.Int).SetBytes(buf)
	return v.Rsh(v, n).Uint64()
}

// ShiftLeft returns buf << n. The result may exceed 64 bits.
func ShiftLeft(buf []byte, n uint) *big.Int {
	v := new(big.Int).SetBytes(buf)
	return v.Lsh(v, n)
}

// MaskBytes returns buf & mask.
func MaskBytes(buf []byte, mask uint64) uint64 {
	v := new(big.Int).SetBytes(buf)
	return v.And(v, new(big.Int).SetUint64(mask)).Uint64()
}
