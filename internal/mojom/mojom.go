// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package mojom extracts doxygen documentation from mojom interface
// definition files.
//
// A documentation block is a maximal run of lines opened by a line containing
// exactly "/**" and closed by a line containing exactly " */". Matching is
// line-exact: indented or inline delimiters are not recognized, and every
// line outside a block is ignored. The rest of the mojom grammar is not
// parsed at all.
package mojom

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	blockStart = "/**"
	blockEnd   = " */"
)

// SyntaxError reports a malformed documentation block: a start delimiter seen
// while the previous block is still open. It is fatal to the run; no output
// is produced for a file that fails to scan.
type SyntaxError struct {
	File string // input file name, as passed to Extract
	Line int    // 1-based line number of the offending line
	Col  int    // 1-based column, always 1: delimiters occupy the whole line
	Text string // offending line, without the line terminator
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: expected end of comment, got %q", e.File, e.Line, e.Col, e.Text)
}

// Extract returns the documentation blocks of src in source order. Each block
// is the verbatim delimiter-to-delimiter text, line terminators preserved.
//
// A stray end delimiter outside a block closes nothing and is ignored. A
// block still open at end of input is discarded without error; the generated
// files downstream depend on this behavior, so it is preserved rather than
// reported.
func Extract(file string, src []byte) ([]string, error) {
	var (
		blocks  []string
		inBlock bool
		comment strings.Builder
	)

	for n, line := range splitLines(src) {
		switch {
		case isDelim(line, blockStart):
			if inBlock {
				return nil, &SyntaxError{
					File: file,
					Line: n + 1,
					Col:  1,
					Text: strings.TrimSuffix(line, "\n"),
				}
			}
			inBlock = true
			comment.Reset()
			comment.WriteString(line)
		case isDelim(line, blockEnd):
			if inBlock {
				comment.WriteString(line)
				blocks = append(blocks, comment.String())
			}
			inBlock = false
			comment.Reset()
		case inBlock:
			comment.WriteString(line)
		}
	}

	return blocks, nil
}

// isDelim reports whether line consists of exactly delim followed by a line
// terminator, or by end of input. A carriage return before the terminator
// defeats the match, same as the tools that generate these files expect.
func isDelim(line, delim string) bool {
	return strings.TrimSuffix(line, "\n") == delim
}

// splitLines splits src into lines, each keeping its terminator. The final
// line is returned even if it has none.
func splitLines(src []byte) []string {
	var lines []string
	for len(src) > 0 {
		i := bytes.IndexByte(src, '\n')
		if i < 0 {
			lines = append(lines, string(src))
			break
		}
		lines = append(lines, string(src[:i+1]))
		src = src[i+1:]
	}
	return lines
}

// header and footer wrap the extracted blocks in the generated documentation
// file. The license and namespace must match the generated IPA interface
// sources the documentation accompanies, byte for byte.
const header = `/* SPDX-License-Identifier: LGPL-2.1-or-later */
/*
 * Copyright (C) 2021, Google Inc.
 *
 * %[1]s_ipa_interface.cpp - Docs file for generated %[1]s.mojom
 *
 * This file is auto-generated. Do not edit.
 */

namespace libcamera {

`

const footer = "} /* namespace libcamera */\n"

// Generate assembles the documentation file for the mojom file named by file
// with contents src: every documentation block of src, verbatim and in source
// order, each followed by one blank line, wrapped in the libcamera namespace
// boilerplate.
func Generate(file string, src []byte) ([]byte, error) {
	blocks, err := Extract(file, src)
	if err != nil {
		return nil, err
	}

	var doc strings.Builder
	fmt.Fprintf(&doc, header, Name(file))
	for _, b := range blocks {
		doc.WriteString(b)
		doc.WriteString("\n")
	}
	doc.WriteString(footer)

	return []byte(doc.String()), nil
}

// Name derives the interface name used in the generated boilerplate: the base
// name of file with the .mojom suffix stripped.
func Name(file string) string {
	return strings.TrimSuffix(filepath.Base(file), ".mojom")
}
