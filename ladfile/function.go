package ladfile

import (
	"encoding/json"

	"github.com/teranos/lad/errors"
)

// Function is a callable exposed to scripts.
type Function struct {
	Identifier    string     `json:"identifier"`
	Arguments     []Argument `json:"arguments"`
	Return        Argument   `json:"return"`
	Documentation string     `json:"documentation,omitempty"`
	Namespace     Namespace  `json:"namespace"`
}

// Namespace is where a function lives: globally, or on a type.
// The zero value is the global namespace.
type Namespace struct {
	Type TypeID
}

// GlobalNamespace returns the global namespace.
func GlobalNamespace() Namespace { return Namespace{} }

// OnType returns the namespace of type id.
func OnType(id TypeID) Namespace { return Namespace{Type: id} }

// IsGlobal reports whether n is the global namespace.
func (n Namespace) IsGlobal() bool { return n.Type == "" }

func (n Namespace) String() string {
	if n.IsGlobal() {
		return "Global"
	}
	return "OnType(" + string(n.Type) + ")"
}

func (n Namespace) MarshalJSON() ([]byte, error) {
	if n.IsGlobal() {
		return json.Marshal("Global")
	}
	return tagged("OnType", n.Type)
}

func (n *Namespace) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if name != "Global" {
			return errors.Newf("unknown namespace %q", name)
		}
		*n = GlobalNamespace()
		return nil
	}

	tag, body, err := singleKey(data)
	if err != nil {
		return errors.Wrap(err, "invalid namespace")
	}
	if tag != "OnType" {
		return errors.Newf("unknown namespace %q", tag)
	}
	var id TypeID
	if err := json.Unmarshal(body, &id); err != nil {
		return errors.Wrap(err, "invalid OnType id")
	}
	*n = OnType(id)
	return nil
}

// Argument is a function argument or return value.
type Argument struct {
	Kind          TypeKind `json:"kind"`
	Name          string   `json:"name,omitempty"`
	Documentation string   `json:"documentation,omitempty"`
}

func (a *Argument) UnmarshalJSON(data []byte) error {
	type plain Argument
	aux := struct {
		Kind json.RawMessage `json:"kind"`
		*plain
	}{plain: (*plain)(a)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	kind, err := UnmarshalKind(aux.Kind)
	if err != nil {
		return err
	}
	a.Kind = kind
	return nil
}

// Instance is a named global value.
type Instance struct {
	Kind     TypeKind `json:"kind"`
	IsStatic bool     `json:"is_static"`
}

func (i *Instance) UnmarshalJSON(data []byte) error {
	type plain Instance
	aux := struct {
		Kind json.RawMessage `json:"kind"`
		*plain
	}{plain: (*plain)(i)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	kind, err := UnmarshalKind(aux.Kind)
	if err != nil {
		return err
	}
	i.Kind = kind
	return nil
}
