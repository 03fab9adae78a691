// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Extractdocs extracts doxygen documentation from mojom files.

It scans the input for documentation blocks opened by a line containing only
the doxygen start marker and closed by the matching end marker on its own
line, and re-emits them verbatim, wrapped in a libcamera namespace
declaration, as a generated documentation file. This lets documentation
written alongside a mojom interface definition accompany the bindings
generated from it.

# Usage

	$ extractdocs [flags...] <input>

By default the generated text is written to standard output. Use -o to write
it to a file instead; the file is written atomically, so a failed run never
leaves a partial document behind.
*/
package main

import (
	_ "embed"

	"go.mojodoc.dev/tools/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
