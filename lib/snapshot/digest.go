// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 keyed hash of a snapshot's uncompressed
// content. Identical crontab texts have identical digests whatever
// compression stored them.
type Digest [32]byte

// digestKey separates snapshot digests from any other BLAKE3 use of
// the same bytes. Readable ASCII zero-padded to 32 bytes; changing it
// invalidates every stored digest.
var digestKey = [32]byte{
	'a', 'd', 'm', 'i', 'n', 't', 'u', 'i', '.', 's', 'n', 'a', 'p', 's', 'h', 'o',
	't', '.', 'c', 'r', 'o', 'n', 't', 'a', 'b', 0, 0, 0, 0, 0, 0, 0,
}

// DigestOf computes the snapshot digest of content.
func DigestOf(content []byte) Digest {
	// NewKeyed only fails for keys that are not 32 bytes.
	hasher, err := blake3.NewKeyed(digestKey[:])
	if err != nil {
		panic("snapshot: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(content)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// String returns the full hex encoding.
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// ID returns the short snapshot identifier: the first 12 hex
// characters of the digest.
func (digest Digest) ID() string {
	return hex.EncodeToString(digest[:6])
}

// ParseDigest parses a 64-character hex string.
func ParseDigest(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing snapshot digest: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("snapshot digest is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}
