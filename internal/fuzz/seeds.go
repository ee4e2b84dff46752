package fuzztests

import "testing"

const (
	maxSeedBytes = 64 << 10 // 64 KiB cap for corpus entries
)

var rustSeeds = []string{
	"",
	"fn main() {}\n",
	"//! Crate docs.\n\n/// Outer.\npub mod a;\nmod b { mod c; }\n",
	"/** Block\n * docs */\nstruct S;\n/*! inner */\n",
	"#!/usr/bin/env rust\nmod r#type;\n",
	"#![allow(dead_code)]\nconst S: &str = r#\"raw \"str\"\"#;\n",
	"let c = 'a'; let l: &'static str = \"x\\n\"; let b = b'\\xff';\n",
	"/* nested /* comment */ still */ mod x;\n",
	"//// not a doc\n/*** not a doc */\n/**/\n",
	"mod a; mod; mod b ;; mod c\n;",
	"0x1f_u8 1e10 2.5f32 1..2 'lifetime\n",
	"\"unterminated\n",
	"/* unterminated\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range rustSeeds {
		f.Add(clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
