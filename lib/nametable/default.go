// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nametable

import (
	"bufio"
	"bytes"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/windrift/paramtext/lib/config"
	"github.com/windrift/paramtext/lib/dictionary"
)

const (
	hashedNamesResource   = "botw_hashed_names.txt"
	numberedNamesResource = "botw_numbered_names.txt"
)

var (
	defaultMu     sync.Mutex
	defaultTable  *Table
	defaultConfig = config.Default()
)

// Configure installs the process-wide Name Table options (dictionary
// override directory, recovery disable, log level) that the next call
// to [Default] builds the singleton from, and immediately applies
// cfg.LogLevel to the default slog logger. Call it once, during
// process startup, before the first [Default] call; once the
// singleton has been built, Configure's dictionary/recovery settings
// have no further effect on it, though the log level still applies.
func Configure(cfg *config.Config) {
	defaultMu.Lock()
	defaultConfig = cfg
	defaultMu.Unlock()

	config.ApplyLogLevel(cfg)
}

// Default returns the process-wide default Table, eagerly populating it
// on first call from the dictionary and recovery settings installed by
// [Configure] (or, absent a Configure call, [config.Default]).
// Initialization is crash-safe: a failure leaves the singleton unset so
// the next call retries rather than wedging on a transient error.
func Default() *Table {
	defaultMu.Lock()
	cfg := defaultConfig
	defaultMu.Unlock()

	reader := dictionary.Default
	if cfg.DictionaryOverride != "" {
		reader = dictionary.NewDirReader(cfg.DictionaryOverride)
	}
	return defaultFrom(reader, cfg.DisableNameRecovery)
}

// defaultFrom is Default with an injectable dictionary reader, used by
// tests to avoid depending on the real embedded resources.
func defaultFrom(reader dictionary.Reader, disableRecovery bool) *Table {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultTable != nil {
		return defaultTable
	}

	table := New()
	table.SetDisableRecovery(disableRecovery)
	if err := loadDefaultTable(table, reader); err != nil {
		slog.Error("nametable: default table initialization failed, will retry on next access", "error", err)
		return table
	}

	defaultTable = table
	return defaultTable
}

// resetDefaultForTest clears the cached singleton so tests can exercise
// initialization against a fresh injected dictionary.
func resetDefaultForTest() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultTable = nil
	defaultConfig = config.Default()
}

func loadDefaultTable(table *Table, reader dictionary.Reader) error {
	hashedData, err := reader.ReadAll(hashedNamesResource)
	if err != nil {
		return fmt.Errorf("loading %s: %w", hashedNamesResource, err)
	}
	names := splitNonBlankLines(hashedData)
	for _, name := range names {
		table.AddReference(name)
	}

	numberedData, err := reader.ReadAll(numberedNamesResource)
	if err != nil {
		return fmt.Errorf("loading %s: %w", numberedNamesResource, err)
	}
	templates := splitNonBlankLines(numberedData)
	table.setTemplates(templates)

	slog.Info("nametable: default table initialized",
		"known_names", humanize.Comma(int64(len(names))),
		"numbered_templates", humanize.Comma(int64(len(templates))),
	)
	return nil
}

// splitNonBlankLines splits data on newlines, dropping blank lines, per
// the embedded dictionary resources' format.
func splitNonBlankLines(data []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
