// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package paramhash computes the 32-bit name hash used as the PARAM map
// key.
//
// PARAM keys are semantically CRC-32 checksums of the original field
// name: the binary format never stores the name itself, only its hash,
// so every PARAM map is keyed by [Hash] rather than by string. This
// package fixes the exact algorithm (IEEE 802.3 CRC-32, applied to the
// raw UTF-8 bytes of the name with no NUL terminator) so that every
// consumer of this module computes the same hash for the same name.
//
// The API surface is three functions, mirroring a content-hashing
// package rather than a cryptographic one:
//
//   - [Compute] -- hashes a name string to its [Hash]
//   - [FormatHash] -- converts a [Hash] to its canonical hex-encoded
//     string representation, used in diagnostics and log output
//   - [ParseHash] -- parses a hex-encoded hash string back to a [Hash]
//
// This package has no dependencies on other paramtext packages.
package paramhash
