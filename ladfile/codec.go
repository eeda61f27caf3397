package ladfile

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/teranos/lad/errors"
)

// Format is a serialization format of a LAD file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", errors.NewUnknownFormatError("%q", name)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.WithHintf(errors.NewUnknownFormatError("%q", path), "use a .json, .yaml or .yml extension")
	}
	return ParseFormat(ext)
}

// Serialize encodes f. JSON is indented; YAML uses block style.
func Serialize(f *File, format Format) ([]byte, error) {
	if f == nil {
		return nil, errors.New("cannot serialize a nil LAD file")
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode LAD file as JSON")
		}
		return append(data, '\n'), nil

	case FormatYAML:
		data, err := json.MarshalIndent(f, "", " ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode LAD file")
		}
		out, err := jsonToYAML(data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode LAD file as YAML")
		}
		return out, nil
	}
	return nil, errors.NewUnknownFormatError("%q", format)
}

// Deserialize decodes a LAD file. Missing mappings decode as empty ones.
func Deserialize(data []byte, format Format) (*File, error) {
	switch format {
	case FormatJSON:
	case FormatYAML:
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse LAD file as YAML")
		}
		data = converted
	default:
		return nil, errors.NewUnknownFormatError("%q", format)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "failed to decode LAD file (%s)", format)
	}
	f.normalize()
	return &f, nil
}

// jsonToYAML re-renders a JSON document as block YAML. JSON is valid YAML,
// so parsing it into a node tree keeps key order; only styles change.
func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	blockStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// blockStyle drops the flow and quoting styles the JSON parse left behind.
// The encoder still quotes strings that would otherwise read as another type.
// Strings no plain or literal scalar can reproduce stay double quoted.
func blockStyle(n *yaml.Node) {
	if !(n.Kind == yaml.ScalarNode && n.Style == yaml.DoubleQuotedStyle && needsQuotes(n.Value)) {
		n.Style = 0
	}
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// needsQuotes reports strings made only of whitespace or starting with a
// line break. Block scalars fold those away on decode.
func needsQuotes(s string) bool {
	if s == "" {
		return false
	}
	return strings.TrimSpace(s) == "" || strings.HasPrefix(s, "\n") || strings.HasPrefix(s, "\r")
}

// yamlToJSON converts a YAML document to JSON, keeping mapping key order.
func yamlToJSON(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := writeJSON(&buf, &node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case 0:
		buf.WriteString("null")
		return nil

	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeJSON(buf, n.Content[0])

	case yaml.AliasNode:
		return writeJSON(buf, n.Alias)

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		var v any
		if n.ShortTag() == "!!str" {
			v = n.Value
		} else if err := n.Decode(&v); err != nil {
			return errors.Wrapf(err, "line %d", n.Line)
		}
		out, err := json.Marshal(v)
		if err != nil {
			return errors.Wrapf(err, "line %d", n.Line)
		}
		buf.Write(out)
		return nil
	}
	return errors.Newf("unsupported YAML node kind %d at line %d", n.Kind, n.Line)
}
