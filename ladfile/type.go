package ladfile

import (
	"encoding/json"

	"github.com/teranos/lad/errors"
)

// Type describes one host type.
type Type struct {
	Identifier          string            `json:"identifier"`
	Module              string            `json:"module,omitempty"`
	Path                string            `json:"path"`
	Generics            []GenericArgument `json:"generics,omitempty"`
	Documentation       string            `json:"documentation,omitempty"`
	AssociatedFunctions []FunctionID      `json:"associated_functions,omitempty"`
	Layout              TypeLayout        `json:"layout"`
	Generated           bool              `json:"generated"`
	Insignificance      int               `json:"insignificance"`
}

// GenericArgument is one instantiated type parameter.
type GenericArgument struct {
	Name   string `json:"name"`
	TypeID TypeID `json:"type_id"`
}

// LayoutKind tags a TypeLayout.
type LayoutKind int

const (
	LayoutOpaque LayoutKind = iota
	LayoutMonoVariant
	LayoutEnum
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutMonoVariant:
		return "MonoVariant"
	case LayoutEnum:
		return "Enum"
	default:
		return "Opaque"
	}
}

// TypeLayout is the visible structure of a type. MonoVariant layouts hold
// exactly one variant.
type TypeLayout struct {
	Kind     LayoutKind
	Variants []Variant
}

// OpaqueLayout has no visible structure.
func OpaqueLayout() TypeLayout { return TypeLayout{Kind: LayoutOpaque} }

// MonoVariantLayout is a struct or tuple struct.
func MonoVariantLayout(v Variant) TypeLayout {
	return TypeLayout{Kind: LayoutMonoVariant, Variants: []Variant{v}}
}

// EnumLayout is one of several variants.
func EnumLayout(variants ...Variant) TypeLayout {
	return TypeLayout{Kind: LayoutEnum, Variants: variants}
}

func (l TypeLayout) MarshalJSON() ([]byte, error) {
	switch l.Kind {
	case LayoutMonoVariant:
		if len(l.Variants) != 1 {
			return nil, errors.Newf("MonoVariant layout has %d variants", len(l.Variants))
		}
		return tagged("MonoVariant", l.Variants[0])
	case LayoutEnum:
		variants := l.Variants
		if variants == nil {
			variants = []Variant{}
		}
		return tagged("Enum", variants)
	default:
		return json.Marshal("Opaque")
	}
}

func (l *TypeLayout) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if name != "Opaque" {
			return errors.Newf("unknown layout %q", name)
		}
		*l = OpaqueLayout()
		return nil
	}

	tag, body, err := singleKey(data)
	if err != nil {
		return errors.Wrap(err, "invalid layout")
	}
	switch tag {
	case "MonoVariant":
		var v Variant
		if err := json.Unmarshal(body, &v); err != nil {
			return err
		}
		*l = MonoVariantLayout(v)
	case "Enum":
		var variants []Variant
		if err := json.Unmarshal(body, &variants); err != nil {
			return err
		}
		*l = EnumLayout(variants...)
	default:
		return errors.Newf("unknown layout %q", tag)
	}
	return nil
}

// VariantKind tags a Variant.
type VariantKind int

const (
	VariantUnit VariantKind = iota
	VariantTupleStruct
	VariantStruct
)

var variantTags = map[VariantKind]string{
	VariantUnit:        "Unit",
	VariantTupleStruct: "TupleStruct",
	VariantStruct:      "Struct",
}

func (k VariantKind) String() string { return variantTags[k] }

// Variant is a struct shape or one enum case. Tuple struct fields carry no
// names.
type Variant struct {
	Kind   VariantKind
	Name   string
	Fields []Field
}

// Field is a member of a variant.
type Field struct {
	Name string `json:"name,omitempty"`
	Type TypeID `json:"type"`
}

type variantBody struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields,omitempty"`
}

func (v Variant) MarshalJSON() ([]byte, error) {
	tag, ok := variantTags[v.Kind]
	if !ok {
		return nil, errors.Newf("unknown variant kind %d", v.Kind)
	}
	body := variantBody{Name: v.Name}
	switch v.Kind {
	case VariantTupleStruct:
		body.Fields = make([]Field, len(v.Fields))
		for i, f := range v.Fields {
			body.Fields[i] = Field{Type: f.Type}
		}
	case VariantStruct:
		body.Fields = v.Fields
	}
	return tagged(tag, body)
}

func (v *Variant) UnmarshalJSON(data []byte) error {
	tag, raw, err := singleKey(data)
	if err != nil {
		return errors.Wrap(err, "invalid variant")
	}

	var kind VariantKind
	found := false
	for k, name := range variantTags {
		if name == tag {
			kind, found = k, true
			break
		}
	}
	if !found {
		return errors.Newf("unknown variant %q", tag)
	}

	var body variantBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return errors.Wrapf(err, "invalid %s variant", tag)
	}
	*v = Variant{Kind: kind, Name: body.Name, Fields: body.Fields}
	return nil
}
