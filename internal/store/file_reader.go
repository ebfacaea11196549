package store

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// readFile reads path, mapping every failure to *IOError.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return data, nil
}

// unwrapScript strips the JavaScript wrapper OPVault puts around its JSON
// payloads, e.g. `var profile={...};` or `ld({...});`.
func unwrapScript(path string, data []byte, prefix, suffix string) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if !bytes.HasPrefix(trimmed, []byte(prefix)) {
		return nil, &FormatError{File: filepath.Base(path), Err: fmt.Errorf("missing %q prefix", prefix)}
	}
	trimmed = trimmed[len(prefix):]

	// Older clients omit the trailing semicolon.
	trimmed = bytes.TrimSuffix(trimmed, []byte(";"))
	suffix = strings.TrimSuffix(suffix, ";")
	if !bytes.HasSuffix(trimmed, []byte(suffix)) {
		return nil, &FormatError{File: filepath.Base(path), Err: fmt.Errorf("missing %q suffix", suffix)}
	}
	return trimmed[:len(trimmed)-len(suffix)], nil
}

// decodeBase64 decodes an optional base64 field; empty input yields nil.
func decodeBase64(field, value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}
	out, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", field, err)
	}
	return out, nil
}
