// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

// Package snapshot keeps backups of crontab texts. Before admintui
// installs a new table it stores the previously loaded one here, so a
// bad edit can be undone with "admintui --restore ID".
//
// Snapshots are content-addressed by a BLAKE3 keyed digest of the
// uncompressed text: storing the same text twice writes one file.
// Payloads are compressed with zstd (default) or LZ4, falling back to
// storing the raw text when compression does not shrink it. The store
// keeps the newest N snapshots and prunes the rest after each write.
package snapshot
