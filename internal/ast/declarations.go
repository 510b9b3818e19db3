package ast

import (
	"fmt"
	"strings"
)

// Declaration is the marker interface for the three top-level-or-class-body
// constructs in spec §3.2: FunctionDeclaration, VariableDeclaration,
// ClassDeclaration.
type Declaration interface {
	Node
	declarationNode()
}

// TypeParameter is a generic parameter `<T: Bound>`; Bound is nil when
// unconstrained.
type TypeParameter struct {
	Name  string
	Bound Type
}

func (p TypeParameter) String() string {
	if p.Bound == nil {
		return p.Name
	}
	return p.Name + ": " + p.Bound.String()
}

// FunctionParameter is one entry in a parameter list. Default is nil when
// absent; at most one parameter in a list may have IsRest set, and it must
// be the last one (spec §3.2, §4.3).
type FunctionParameter struct {
	Name      string
	ValueType Type
	IsRest    bool
	Default   Expression
}

func (p FunctionParameter) String() string {
	var b strings.Builder
	if p.IsRest {
		b.WriteByte('*')
	}
	b.WriteString(p.Name)
	if p.ValueType != nil {
		b.WriteString(": ")
		b.WriteString(p.ValueType.String())
	}
	if p.Default != nil {
		b.WriteString(" = ")
		b.WriteString(p.Default.String())
	}
	return b.String()
}

// FunctionDeclaration is `fn` or `operator fn`. Body is nil iff Modifier is
// ModifierNative or ModifierAbstract (spec §3.2 invariant, §4.3 constraint).
type FunctionDeclaration struct {
	IsOperator bool
	Access     Access
	Modifier   Modifier
	Name       string
	TypeParams []TypeParameter
	Params     []FunctionParameter
	// Body is nil (no body, native/abstract), a *ReturnStatement (the
	// `= expr` sugar), or a *Block (the `{ }` form, whose Trailing — if any
	// — is the function's implicit return value).
	Body       Node
	ReturnType Type
	Range      TokenRange
}

func (*FunctionDeclaration) declarationNode()         {}
func (f *FunctionDeclaration) TokenLiteral() string    { return "fn" }
func (f *FunctionDeclaration) Pos() TokenRange          { return f.Range }
func (f *FunctionDeclaration) String() string {
	var b strings.Builder
	if f.Access != AccessNone {
		b.WriteString(f.Access.String() + " ")
	}
	if f.Modifier != ModifierNone {
		b.WriteString(f.Modifier.String() + " ")
	}
	if f.IsOperator {
		b.WriteString("operator ")
	}
	b.WriteString("fn ")
	if len(f.TypeParams) > 0 {
		b.WriteString("<")
		for i, tp := range f.TypeParams {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(tp.String())
		}
		b.WriteString("> ")
	}
	b.WriteString(f.Name)
	b.WriteByte('(')
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	if f.ReturnType != nil {
		b.WriteString(" -> " + f.ReturnType.String())
	}
	return b.String()
}

// Accessor is a `get`/`set` block attached to a VariableDeclaration.
type Accessor struct {
	Body  Node
	Range TokenRange
}

// VariableDeclaration is `var`/`val`. Getter/Setter/Delegate/Default are
// nil when absent; their mutual-exclusion rules live in the parser (spec
// §4.3 "Variable declaration constraints").
type VariableDeclaration struct {
	Mutable   bool
	Access    Access
	Modifier  Modifier
	Name      string
	ValueType Type
	Default   Expression
	Delegate  Expression
	Getter    *Accessor
	Setter    *Accessor
	Range     TokenRange
}

func (*VariableDeclaration) declarationNode() {}
func (v *VariableDeclaration) TokenLiteral() string {
	if v.Mutable {
		return "var"
	}
	return "val"
}
func (v *VariableDeclaration) Pos() TokenRange { return v.Range }
func (v *VariableDeclaration) String() string {
	var b strings.Builder
	if v.Access != AccessNone {
		b.WriteString(v.Access.String() + " ")
	}
	if v.Modifier != ModifierNone {
		b.WriteString(v.Modifier.String() + " ")
	}
	b.WriteString(v.TokenLiteral() + " " + v.Name)
	if v.ValueType != nil {
		b.WriteString(": " + v.ValueType.String())
	}
	if v.Default != nil {
		b.WriteString(" = " + v.Default.String())
	}
	if v.Delegate != nil {
		b.WriteString(" by " + v.Delegate.String())
	}
	return b.String()
}

// ClassDeclaration is `class`. Body must contain only declarations; a
// nested ClassDeclaration in Body is rejected by the parser (spec §3.2
// invariant iv, §4.3 "Class declaration constraints").
type ClassDeclaration struct {
	Access     Access
	Modifier   Modifier
	Name       string
	TypeParams []TypeParameter
	SuperClass Type
	Interfaces []Type
	Body       []Declaration
	Range      TokenRange
}

func (*ClassDeclaration) declarationNode()       {}
func (c *ClassDeclaration) TokenLiteral() string { return "class" }
func (c *ClassDeclaration) Pos() TokenRange      { return c.Range }
func (c *ClassDeclaration) String() string {
	var b strings.Builder
	if c.Access != AccessNone {
		b.WriteString(c.Access.String() + " ")
	}
	if c.Modifier != ModifierNone {
		b.WriteString(c.Modifier.String() + " ")
	}
	b.WriteString("class " + c.Name)
	if c.SuperClass != nil {
		b.WriteString(": " + c.SuperClass.String())
		for _, i := range c.Interfaces {
			b.WriteString(", " + i.String())
		}
	}
	fmt.Fprintf(&b, " { %d members }", len(c.Body))
	return b.String()
}
