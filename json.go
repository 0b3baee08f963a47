package funcalc

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// JSON encoding of expression trees: one tagged object per node, the
// tag in "type", children in "left"/"right", "base" or "arg". Used by
// Function.Save/LoadFunction and the CLI.

type jsonNode struct {
	Type     string          `json:"type"`
	Value    *float64        `json:"value,omitempty"`
	Left     json.RawMessage `json:"left,omitempty"`
	Right    json.RawMessage `json:"right,omitempty"`
	Base     json.RawMessage `json:"base,omitempty"`
	Exponent *float64        `json:"exponent,omitempty"`
	Arg      json.RawMessage `json:"arg,omitempty"`
}

// ToJSON encodes an expression tree.
func ToJSON(e Expr) ([]byte, error) {
	node := jsonNode{Type: e.exprType()}
	child := func(c Expr) (json.RawMessage, error) { return ToJSON(c) }

	var err error
	switch v := e.(type) {
	case *Constant:
		val := v.Value()
		node.Value = &val
	case *Variable:
	case *Sum:
		if node.Left, err = child(v.Left()); err != nil {
			return nil, err
		}
		if node.Right, err = child(v.Right()); err != nil {
			return nil, err
		}
	case *Product:
		if node.Left, err = child(v.Left()); err != nil {
			return nil, err
		}
		if node.Right, err = child(v.Right()); err != nil {
			return nil, err
		}
	case *Power:
		if node.Base, err = child(v.Base()); err != nil {
			return nil, err
		}
		exp := v.Exponent()
		node.Exponent = &exp
	case *Sin:
		if node.Arg, err = child(v.Arg()); err != nil {
			return nil, err
		}
	case *Cos:
		if node.Arg, err = child(v.Arg()); err != nil {
			return nil, err
		}
	case *Exp:
		if node.Arg, err = child(v.Arg()); err != nil {
			return nil, err
		}
	case *Ln:
		if node.Arg, err = child(v.Arg()); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unknown expression type %T", e)
	}

	b, err := json.Marshal(node)
	return b, errors.Wrap(err, "encode expression")
}

// FromJSON decodes an expression tree written by ToJSON.
func FromJSON(data []byte) (Expr, error) {
	var node jsonNode
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, errors.Wrap(err, "decode expression")
	}

	child := func(field string, raw json.RawMessage) (Expr, error) {
		if raw == nil {
			return nil, errors.Errorf("%s: missing %q", node.Type, field)
		}
		e, err := FromJSON(raw)
		return e, errors.Wrapf(err, "%s: %s", node.Type, field)
	}

	switch node.Type {
	case "const":
		if node.Value == nil {
			return nil, errors.New("const: missing \"value\"")
		}
		return Const(*node.Value), nil
	case "var":
		return Var(), nil
	case "sum", "product":
		left, err := child("left", node.Left)
		if err != nil {
			return nil, err
		}
		right, err := child("right", node.Right)
		if err != nil {
			return nil, err
		}
		if node.Type == "sum" {
			return SumOf(left, right), nil
		}
		return ProductOf(left, right), nil
	case "power":
		base, err := child("base", node.Base)
		if err != nil {
			return nil, err
		}
		if node.Exponent == nil {
			return nil, errors.New("power: missing \"exponent\"")
		}
		return PowerOf(base, *node.Exponent), nil
	case "sin", "cos", "exp", "ln":
		arg, err := child("arg", node.Arg)
		if err != nil {
			return nil, err
		}
		switch node.Type {
		case "sin":
			return SinOf(arg), nil
		case "cos":
			return CosOf(arg), nil
		case "exp":
			return ExpOf(arg), nil
		default:
			return LnOf(arg), nil
		}
	}
	return nil, errors.Errorf("unknown expression type %q", node.Type)
}
