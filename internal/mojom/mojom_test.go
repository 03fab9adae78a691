package mojom

import (
	"errors"
	"testing"

	"go.mojodoc.dev/tools/internal/testutil"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		src  string
		want []string
	}{
		"empty input": {
			src:  "",
			want: nil,
		},
		"no blocks": {
			src:  "module ipa.vimc;\n\ninterface IPAVimcInterface {\n};\n",
			want: nil,
		},
		"single block": {
			src: "/**\n * \\brief Initialise the IPA\n */\n",
			want: []string{
				"/**\n * \\brief Initialise the IPA\n */\n",
			},
		},
		"lines outside blocks are ignored": {
			src: "module ipa.vimc;\n/**\n * One.\n */\ninterface Foo {};\n",
			want: []string{
				"/**\n * One.\n */\n",
			},
		},
		"multiple blocks keep source order": {
			src: "/**\n * One.\n */\nfoo();\n/**\n * Two.\n */\n",
			want: []string{
				"/**\n * One.\n */\n",
				"/**\n * Two.\n */\n",
			},
		},
		"stray end delimiter is ignored": {
			src:  "foo();\n */\nbar();\n",
			want: nil,
		},
		"stray end delimiter between blocks": {
			src: " */\n/**\n * One.\n */\n */\n",
			want: []string{
				"/**\n * One.\n */\n",
			},
		},
		"unterminated trailing block is discarded": {
			src: "/**\n * One.\n */\n/**\n * Never closed.\n",
			want: []string{
				"/**\n * One.\n */\n",
			},
		},
		"indented delimiters are not recognized": {
			src:  "  /**\n * Indented.\n  */\n",
			want: nil,
		},
		"end delimiter without leading space does not close": {
			src:  "/**\n * One.\n*/\n",
			want: nil,
		},
		"crlf delimiters are not recognized": {
			src:  "/**\r\n * One.\r\n */\r\n",
			want: nil,
		},
		"final line without terminator": {
			src: "/**\n * One.\n */",
			want: []string{
				"/**\n * One.\n */",
			},
		},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := Extract("test.mojom", []byte(tc.src))
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestExtractNestedStart(t *testing.T) {
	t.Parallel()

	src := "/**\n * Outer.\n/**\n * Inner.\n */\n"

	_, err := Extract("test.mojom", []byte(src))
	if err == nil {
		t.Fatal("must fail on a start delimiter inside an open block")
	}

	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("want *SyntaxError, got %T", err)
	}

	testutil.AssertEqual(t, serr.File, "test.mojom")
	testutil.AssertEqual(t, serr.Line, 3)
	testutil.AssertEqual(t, serr.Col, 1)
	testutil.AssertEqual(t, serr.Text, "/**")
	testutil.AssertEqual(t, serr.Error(), `test.mojom:3:1: expected end of comment, got "/**"`)
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	src := "line A\n/**\n * Hello.\n */\nline B\n"
	want := `/* SPDX-License-Identifier: LGPL-2.1-or-later */
/*
 * Copyright (C) 2021, Google Inc.
 *
 * bar_ipa_interface.cpp - Docs file for generated bar.mojom
 *
 * This file is auto-generated. Do not edit.
 */

namespace libcamera {

/**
 * Hello.
 */

} /* namespace libcamera */
`

	got, err := Generate("bar.mojom", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, string(got), want)
}

func TestGenerateNoBlocks(t *testing.T) {
	t.Parallel()

	want := `/* SPDX-License-Identifier: LGPL-2.1-or-later */
/*
 * Copyright (C) 2021, Google Inc.
 *
 * empty_ipa_interface.cpp - Docs file for generated empty.mojom
 *
 * This file is auto-generated. Do not edit.
 */

namespace libcamera {

} /* namespace libcamera */
`

	got, err := Generate("empty.mojom", nil)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, string(got), want)
}

func TestGenerateMalformed(t *testing.T) {
	t.Parallel()

	out, err := Generate("bad.mojom", []byte("/**\n/**\n */\n"))
	if err == nil {
		t.Fatal("must fail on malformed input")
	}
	if out != nil {
		t.Fatalf("no output must be produced on error, got %q", out)
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		file string
		want string
	}{
		"bare name":            {file: "bar.mojom", want: "bar"},
		"with directory":       {file: "a/b/foo.mojom", want: "foo"},
		"no suffix":            {file: "a/b/foo", want: "foo"},
		"suffix only stripped": {file: "foo.mojom.mojom", want: "foo.mojom"},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			testutil.AssertEqual(t, Name(tc.file), tc.want)
		})
	}
}
