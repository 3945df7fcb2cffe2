// File: decode.go
// Title: URL Parameter Decoder
// Description: Turns the query string of a URL into ordered Params,
//              expanding comma lists, key:value maps and embedded JSON.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Injected default URL provider, swallowed parse errors logged

package urlx

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"

	tkerror "github.com/hrimthurs/Tackle/core/error"
	tkerrors "github.com/hrimthurs/Tackle/core/errors"
	tklog "github.com/hrimthurs/Tackle/core/log"
	"github.com/hrimthurs/Tackle/utils/stringx"
)

var errInvalidUTF8 = errors.New("percent-decoding produced invalid UTF-8")

// maxLoggedURL caps the source text written to debug logs
const maxLoggedURL = 256

// Provider supplies the URL to decode when Decode is given an empty source
type Provider func() (string, error)

// StaticURL returns a Provider that always answers raw
func StaticURL(raw string) Provider {
	return func() (string, error) {
		return raw, nil
	}
}

// DecoderOption configures a Decoder
type DecoderOption func(*Decoder)

// WithKeysLowerCase lower-cases parameter names
func WithKeysLowerCase(enabled bool) DecoderOption {
	return func(d *Decoder) {
		d.keysLowerCase = enabled
	}
}

// WithValsLowerCase lower-cases parameter values before they are split
func WithValsLowerCase(enabled bool) DecoderOption {
	return func(d *Decoder) {
		d.valsLowerCase = enabled
	}
}

// WithDefaultURL sets the provider consulted for an empty source
func WithDefaultURL(provider Provider) DecoderOption {
	return func(d *Decoder) {
		d.defaultURL = provider
	}
}

// WithLogger sets the logger that records recovered parse failures
func WithLogger(logger *tklog.Logger) DecoderOption {
	return func(d *Decoder) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Decoder parses query strings into Params. It is immutable once built
// and safe for concurrent use.
type Decoder struct {
	keysLowerCase bool
	valsLowerCase bool
	defaultURL    Provider
	logger        *tklog.Logger
}

// NewDecoder returns a Decoder configured by opts
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{
		logger: tklog.GetDefault().WithName("urlx"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode parses src and decodes its query. src is percent-decoded once as
// a whole before parsing. An empty src asks the default URL provider; with
// no provider the call fails with ENVIRONMENT_ERROR. A src that does not
// resolve to an absolute URL decodes to empty Params without error.
func (d *Decoder) Decode(src string) (*Params, error) {
	if src == "" {
		resolved, err := d.resolveDefault()
		if err != nil {
			return nil, err
		}
		src = resolved
	}

	u, err := parseSource("Decode", src)
	if err != nil {
		d.logger.DebugWithErr("query ignored", err,
			tklog.String("url", stringx.Truncate(src, maxLoggedURL, "...")),
			tklog.String("error_code", string(tkerror.GetCode(err))))
		return NewParams(), nil
	}
	return d.DecodeURL(u), nil
}

func (d *Decoder) resolveDefault() (string, error) {
	if d.defaultURL == nil {
		return "", tkerrors.Environment(tkerrors.ModuleURLx, "Decode", "default URL provider")
	}

	resolved, err := d.defaultURL()
	if err != nil {
		return "", tkerrors.NewErrorBuilder(tkerrors.ModuleURLx).
			Operation("Decode").
			Message("default URL provider failed").
			Cause(err).
			Code(tkerror.CodeEnvironmentError).
			Severity(tkerror.SeverityHigh).
			Build()
	}
	if resolved == "" {
		return "", tkerrors.Environment(tkerrors.ModuleURLx, "Decode", "default URL")
	}
	return resolved, nil
}

// DecodeURL decodes the query of u. Names keep the order of their first
// appearance and repeated names take their first value. A nil URL gives
// empty Params.
func (d *Decoder) DecodeURL(u *url.URL) *Params {
	params := NewParams()
	if u == nil {
		return params
	}

	q := ParseQuery(u.RawQuery)
	for _, name := range q.Keys() {
		value, hasValue, _ := q.Get(name)

		key := name
		if d.keysLowerCase {
			key = strings.ToLower(name)
		}

		if !hasValue {
			params.Set(key, Bool(true))
			continue
		}
		params.Set(key, d.decodeValue(name, value))
	}
	return params
}

// decodeValue expands one parameter value. The value becomes a map when
// every token is a key:value pair with its own key, the single token when
// there is one, and a list of the tokens otherwise.
func (d *Decoder) decodeValue(name, raw string) Value {
	raw = stripQuotes(raw)
	if d.valsLowerCase {
		raw = strings.ToLower(raw)
	}

	tokens, ok := tokenize(raw)
	if !ok {
		d.logger.Trace("unbalanced braces or quotes, value kept whole", tklog.String("param", name))
	}

	sub := NewMap()
	for _, token := range tokens {
		s, isString := token.AsString()
		if !isString {
			continue
		}
		key, rest, found := strings.Cut(s, ":")
		if !found {
			continue
		}
		sub.Set(key, tryJSON(rest))
	}

	switch {
	case sub.Len() == len(tokens):
		return Value{kind: KindMap, m: sub}
	case len(tokens) > 1:
		return Value{kind: KindList, list: tokens}
	default:
		return tokens[0]
	}
}

// parseSource percent-decodes src as a whole and parses the result as an
// absolute URL
func parseSource(operation, src string) (*url.URL, error) {
	decoded, err := url.PathUnescape(src)
	if err != nil {
		return nil, tkerrors.URLParse(operation, src, err)
	}
	if !utf8.ValidString(decoded) {
		return nil, tkerrors.URLParse(operation, src, errInvalidUTF8)
	}

	u, err := url.Parse(strings.TrimSpace(decoded))
	if err != nil {
		return nil, tkerrors.URLParse(operation, src, err)
	}
	if !u.IsAbs() {
		return nil, tkerrors.URLParse(operation, src, nil)
	}
	return u, nil
}

// Decode decodes src with a Decoder built from opts
func Decode(src string, opts ...DecoderOption) (*Params, error) {
	return NewDecoder(opts...).Decode(src)
}

// DecodeURL decodes u with a Decoder built from opts
func DecodeURL(u *url.URL, opts ...DecoderOption) *Params {
	return NewDecoder(opts...).DecodeURL(u)
}
