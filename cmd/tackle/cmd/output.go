package cmd

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tkerrors "github.com/hrimthurs/Tackle/core/errors"
	"github.com/hrimthurs/Tackle/utils/urlx"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

var outputFormats = []string{formatJSON, formatYAML, formatTOML}

// render writes params in the named format. JSON and YAML keep parameter
// order; TOML sorts keys and leaves out nulls, which it cannot express.
func render(params *urlx.Params, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case formatJSON:
		return renderJSON(params)
	case formatYAML, "yml":
		return renderYAML(params)
	case formatTOML:
		return renderTOML(params)
	}
	return nil, tkerrors.InvalidInput(tkerrors.ModuleCLI, "render", format, "one of "+strings.Join(outputFormats, ", "))
}

func renderJSON(params *urlx.Params) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(params.JSON()), "", "  "); err != nil {
		return nil, tkerrors.OperationFailed(tkerrors.ModuleCLI, "render_json", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func renderYAML(params *urlx.Params) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlMapping(&params.Map)); err != nil {
		return nil, tkerrors.OperationFailed(tkerrors.ModuleCLI, "render_yaml", err)
	}
	if err := enc.Close(); err != nil {
		return nil, tkerrors.OperationFailed(tkerrors.ModuleCLI, "render_yaml", err)
	}
	return buf.Bytes(), nil
}

func yamlMapping(m *urlx.Map) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	m.Range(func(key string, val urlx.Value) bool {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			yamlNode(val))
		return true
	})
	return node
}

func yamlNode(v urlx.Value) *yaml.Node {
	switch v.Kind() {
	case urlx.KindBool:
		b, _ := v.AsBool()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
	case urlx.KindNumber:
		lit, _ := v.Literal()
		tag := "!!float"
		if isIntegerLiteral(lit) {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: lit}
	case urlx.KindString:
		s, _ := v.AsString()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	case urlx.KindList:
		items, _ := v.AsList()
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range items {
			node.Content = append(node.Content, yamlNode(item))
		}
		return node
	case urlx.KindMap:
		m, _ := v.AsMap()
		return yamlMapping(m)
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func renderTOML(params *urlx.Params) ([]byte, error) {
	var buf bytes.Buffer
	doc, _ := tomlValue(urlx.MapOf(&params.Map))
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, tkerrors.OperationFailed(tkerrors.ModuleCLI, "render_toml", err)
	}
	return buf.Bytes(), nil
}

// tomlValue converts v to data the TOML encoder accepts. ok is false for
// null and undefined values, which are left out.
func tomlValue(v urlx.Value) (value any, ok bool) {
	switch v.Kind() {
	case urlx.KindBool:
		b, _ := v.AsBool()
		return b, true
	case urlx.KindNumber:
		lit, _ := v.Literal()
		if isIntegerLiteral(lit) {
			if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
				return n, true
			}
		}
		f, _ := v.AsFloat()
		return f, true
	case urlx.KindString:
		s, _ := v.AsString()
		return s, true
	case urlx.KindList:
		items, _ := v.AsList()
		out := make([]any, 0, len(items))
		for _, item := range items {
			if converted, ok := tomlValue(item); ok {
				out = append(out, converted)
			}
		}
		return out, true
	case urlx.KindMap:
		m, _ := v.AsMap()
		out := make(map[string]any, m.Len())
		m.Range(func(key string, item urlx.Value) bool {
			if converted, ok := tomlValue(item); ok {
				out[key] = converted
			}
			return true
		})
		return out, true
	default:
		return nil, false
	}
}

func isIntegerLiteral(lit string) bool {
	return !strings.ContainsAny(lit, ".eE")
}
