package ast

import "strings"

// Type is the marker interface for the two type-reference shapes in spec
// §3.2: `NamedType` and `NullableType`.
type Type interface {
	Node
	typeNode()
}

// NamedType is `QualifiedName TypeArgs?`, e.g. `Array<String>` or
// `pkg.Foo<T>`.
type NamedType struct {
	Name     QualifiedName
	TypeArgs []Type
	Range    TokenRange
}

func (*NamedType) typeNode()             {}
func (t *NamedType) TokenLiteral() string { return t.Name.Final }
func (t *NamedType) Pos() TokenRange      { return t.Range }
func (t *NamedType) String() string {
	if len(t.TypeArgs) == 0 {
		return t.Name.String()
	}
	parts := make([]string, len(t.TypeArgs))
	for i, a := range t.TypeArgs {
		parts[i] = a.String()
	}
	return t.Name.String() + "<" + strings.Join(parts, ", ") + ">"
}

// NullableType is `Type "?"`.
type NullableType struct {
	Base  Type
	Range TokenRange
}

func (*NullableType) typeNode()             {}
func (t *NullableType) TokenLiteral() string { return "?" }
func (t *NullableType) Pos() TokenRange      { return t.Range }
func (t *NullableType) String() string       { return t.Base.String() + "?" }
