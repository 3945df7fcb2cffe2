// Package urlx encodes nested values into URL query strings and decodes
// them back.
//
// Package: urlx
// Title: URL Parameter Codec
// Description: A small grammar on top of ordinary query parameters lets a
//              single parameter carry a list, a map or a JSON document:
//
//	?flag               flag: true
//	?a=1                a: 1
//	?a=x:1              a: {x: 1}
//	?a=1,2,3            a: [1, 2, 3]
//	?a=x:1,y:2          a: {x: 1, y: 2}
//	?a={"k":[1,2]}      a: {k: [1, 2]}
//
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Ordered query editing, tagged values
//
// # Values
//
// Decoded data is held in Value, a tagged union of undefined, null, bool,
// number, string, list and map. Maps keep insertion order, and Params, the
// result of decoding, keeps the order parameters appear in the URL. Numbers
// remember their literal text so that 1.50 is written back as 1.50.
//
// # Decoding
//
//	dec := urlx.NewDecoder(urlx.WithKeysLowerCase(true))
//	params, err := dec.Decode("https://example.com/?Page=2&tags=go,url")
//
// Each parameter value is split on top-level commas; commas inside a brace
// group do not count. Tokens that parse as JSON become JSON values.
// When every token is a key:value pair with a distinct key, the parameter
// becomes a map; otherwise a single token stands alone and several tokens
// form a list. Malformed URLs decode to empty Params; an empty source with
// no default URL provider is an error.
//
// # Encoding
//
//	u, err := urlx.Encode("https://example.com/", params, false)
//
// Lists are written as v1,v2 and maps as k1:v1,k2:v2, with strings taken
// verbatim and every other element written as JSON. Undefined values are
// skipped. EncodeURL edits the URL it is given in place and returns it.
// Only the query is touched; other parameters, including presence-only
// flags, are left as they were.
package urlx
