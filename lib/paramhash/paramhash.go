// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package paramhash

import (
	"encoding/hex"
	"fmt"
	"hash/crc32"
)

// Hash is a PARAM key: the CRC-32 (IEEE 802.3) checksum of a field
// name's raw UTF-8 bytes.
type Hash uint32

// ParamRootHash is the fixed sentinel parent hash used when resolving
// names at the root of a document (CRC32("param_root")), per the Name
// Table lookup algorithm's "parent hash" parameter.
var ParamRootHash = Compute("param_root")

// Compute hashes name to its [Hash]. The standard library's
// hash/crc32.ChecksumIEEE already applies the IEEE 802.3 polynomial
// with the conventional init value 0xFFFFFFFF and final XOR
// 0xFFFFFFFF, so no third-party CRC implementation is needed.
func Compute(name string) Hash {
	return Hash(crc32.ChecksumIEEE([]byte(name)))
}

// FormatHash returns the canonical 8-character lowercase hex
// representation of a [Hash], used in diagnostics and log output.
func FormatHash(h Hash) string {
	var buf [4]byte
	buf[0] = byte(h >> 24)
	buf[1] = byte(h >> 16)
	buf[2] = byte(h >> 8)
	buf[3] = byte(h)
	return hex.EncodeToString(buf[:])
}

// ParseHash parses an 8-character hex-encoded hash string back to a
// [Hash]. Returns an error if the string is not a valid 8-character
// hex encoding of 4 bytes.
func ParseHash(hexString string) (Hash, error) {
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return 0, fmt.Errorf("parsing param hash: %w", err)
	}
	if len(decoded) != 4 {
		return 0, fmt.Errorf("param hash is %d bytes, want 4", len(decoded))
	}
	return Hash(decoded[0])<<24 | Hash(decoded[1])<<16 | Hash(decoded[2])<<8 | Hash(decoded[3]), nil
}

// String implements fmt.Stringer, formatting a Hash the same way
// [FormatHash] does.
func (h Hash) String() string {
	return FormatHash(h)
}
