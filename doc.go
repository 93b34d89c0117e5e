// Package efjson is a push-driven, incremental tokenizer for JSON and
// JSON5. Callers feed one code point at a time and get back a Token
// describing what was just recognized: a structural marker, a literal
// character, an escape step, or an error. It never builds a value tree
// and performs no I/O; a byte or UTF-16 stream still needs a decoder, of
// which UTF8Decoder and UTF16Decoder are thin adapters.
package efjson
