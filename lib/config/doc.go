// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for paramtext.
//
// Configuration is loaded from a single file specified by the
// PARAMTEXT_CONFIG environment variable (via [Load]) or an explicit path
// (via [LoadFile]). There are no fallbacks and no automatic file search.
// This ensures deterministic, auditable configuration with no hidden
// overrides.
//
// Key exports:
//
//   - [Config] -- DisableNameRecovery, DictionaryOverride, LogLevel
//   - [Default] -- returns a Config with library defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other paramtext package.
package config
