// Package ast defines the polymorphic node set produced by the parser
// (spec.md §3.2). Go has no tagged unions, so each grammatical category
// (Declaration, Type, Statement, Expression) is a marker interface
// implemented by a closed set of concrete structs, instead of the source
// grammar's trait-object hierarchy with dynamic downcasts.
package ast

import "fmt"

// TokenRange is a half-open interval [Start, End) of token indices — not
// character offsets — recording a node's extent in the token vector
// (spec §3.2, GLOSSARY).
type TokenRange struct {
	Start, End int
}

// Node is implemented by every AST type. TokenLiteral and String exist for
// diagnostics and the `lambdac parse --dump-ast` tree printer; Pos exposes
// the node's TokenRange for tooling built on top of the parser.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() TokenRange
}

// QualifiedName is a `(package?, final)` pair (GLOSSARY), rendered as
// "package.final" when a package segment is present.
type QualifiedName struct {
	Package string
	Final   string
}

func (q QualifiedName) String() string {
	if q.Package == "" {
		return q.Final
	}
	return q.Package + "." + q.Final
}

// Access is the optional visibility modifier on a declaration.
type Access uint8

const (
	AccessNone Access = iota
	AccessPublic
	AccessPrivate
	AccessProtected
	AccessInternal
)

func (a Access) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessPrivate:
		return "private"
	case AccessProtected:
		return "protected"
	case AccessInternal:
		return "internal"
	default:
		return ""
	}
}

// Modifier is the optional member modifier on a declaration.
type Modifier uint8

const (
	ModifierNone Modifier = iota
	ModifierNative
	ModifierAbstract
	ModifierOpen
	ModifierFinal
)

func (m Modifier) String() string {
	switch m {
	case ModifierNative:
		return "native"
	case ModifierAbstract:
		return "abstract"
	case ModifierOpen:
		return "open"
	case ModifierFinal:
		return "final"
	default:
		return ""
	}
}

// Program is the root node: `package` line, zero or more imports, then
// top-level declarations (spec §3.2, §4.3).
type Program struct {
	Package      PackageDefinition
	Imports      []ImportDefinition
	Declarations []Declaration
	Range        TokenRange
}

func (p *Program) TokenLiteral() string { return "package" }
func (p *Program) Pos() TokenRange      { return p.Range }
func (p *Program) String() string {
	return fmt.Sprintf("Program{package=%s, imports=%d, declarations=%d}",
		p.Package.Name, len(p.Imports), len(p.Declarations))
}

// PackageDefinition is the mandatory first construct of a Program.
type PackageDefinition struct {
	Name  QualifiedName
	Range TokenRange
}

func (p PackageDefinition) TokenLiteral() string { return "package" }
func (p PackageDefinition) Pos() TokenRange       { return p.Range }
func (p PackageDefinition) String() string        { return "package " + p.Name.String() }

// ImportDefinition is one `import` line. Member is empty when the import
// names only a package, not a specific member of it.
type ImportDefinition struct {
	Name   QualifiedName
	Member string
	Range  TokenRange
}

func (i ImportDefinition) TokenLiteral() string { return "import" }
func (i ImportDefinition) Pos() TokenRange       { return i.Range }
func (i ImportDefinition) String() string {
	if i.Member == "" {
		return "import " + i.Name.String()
	}
	return "import " + i.Name.String() + "." + i.Member
}
