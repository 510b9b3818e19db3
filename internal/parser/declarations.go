package parser

import (
	"strings"

	"github.com/wowstarworld/lambda-go/internal/ast"
	"github.com/wowstarworld/lambda-go/internal/syntaxerr"
)

// parseProgram parses `PackageDef LineBreak (ImportDef)* (Declaration)*`
// (spec §4.3). An empty source fails with "Expected package definition"
// (spec §8 boundary behavior).
func (p *Parser) parseProgram() (*ast.Program, error) {
	start := p.buf.Position()
	p.buf.SkipWhitespaces()
	if !p.buf.HasNext() {
		return nil, p.errf("Expected package definition")
	}

	pkg, err := p.parsePackageDefinition()
	if err != nil {
		return nil, err
	}

	var imports []ast.ImportDefinition
	for {
		p.buf.SkipWhitespaces()
		if !p.buf.IsIdentifierOf("import") {
			break
		}
		imp, err := p.parseImportDefinition()
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}

	var decls []ast.Declaration
	for !p.atEnd() {
		decl, err := p.parseTopLevelDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}

	return &ast.Program{
		Package:      pkg,
		Imports:      imports,
		Declarations: decls,
		Range:        ast.TokenRange{Start: start, End: p.buf.Position()},
	}, nil
}

// parsePackageDefinition parses `"package" QualifiedName LineBreak`.
func (p *Parser) parsePackageDefinition() (ast.PackageDefinition, error) {
	start := p.buf.Position()
	if _, err := p.expectIdentifierOf("package"); err != nil {
		return ast.PackageDefinition{}, p.errf("Expected package definition")
	}
	name, err := p.parseQualifiedName()
	if err != nil {
		return ast.PackageDefinition{}, err
	}
	if err := p.requireLineBreak(); err != nil {
		return ast.PackageDefinition{}, err
	}
	return ast.PackageDefinition{Name: name, Range: ast.TokenRange{Start: start, End: p.buf.Position()}}, nil
}

// parseImportDefinition parses `"import" QualifiedName LineBreak`. A
// QualifiedName of length > 1 is split into Name (everything but the last
// segment) and Member (the last segment), matching the `import pkg.Member`
// idiom.
func (p *Parser) parseImportDefinition() (ast.ImportDefinition, error) {
	start := p.buf.Position()
	if _, err := p.expectIdentifierOf("import"); err != nil {
		return ast.ImportDefinition{}, err
	}
	qn, err := p.parseQualifiedName()
	if err != nil {
		return ast.ImportDefinition{}, err
	}
	if err := p.requireLineBreak(); err != nil {
		return ast.ImportDefinition{}, err
	}
	imp := ast.ImportDefinition{Range: ast.TokenRange{Start: start, End: p.buf.Position()}}
	if qn.Package == "" {
		imp.Name = ast.QualifiedName{Final: qn.Final}
	} else {
		pkg, final := "", qn.Package
		if i := strings.LastIndex(qn.Package, "."); i >= 0 {
			pkg, final = qn.Package[:i], qn.Package[i+1:]
		}
		imp.Name = ast.QualifiedName{Package: pkg, Final: final}
		imp.Member = qn.Final
	}
	return imp, nil
}

// parseAccessModifier parses an optional `public|private|protected|internal`.
func (p *Parser) parseAccessModifier() ast.Access {
	switch {
	case p.buf.IsIdentifierOf("public"):
		p.buf.Next()
		return ast.AccessPublic
	case p.buf.IsIdentifierOf("private"):
		p.buf.Next()
		return ast.AccessPrivate
	case p.buf.IsIdentifierOf("protected"):
		p.buf.Next()
		return ast.AccessProtected
	case p.buf.IsIdentifierOf("internal"):
		p.buf.Next()
		return ast.AccessInternal
	default:
		return ast.AccessNone
	}
}

// parseMemberModifier parses an optional `native|abstract|open|final`.
func (p *Parser) parseMemberModifier() ast.Modifier {
	switch {
	case p.buf.IsIdentifierOf("native"):
		p.buf.Next()
		return ast.ModifierNative
	case p.buf.IsIdentifierOf("abstract"):
		p.buf.Next()
		return ast.ModifierAbstract
	case p.buf.IsIdentifierOf("open"):
		p.buf.Next()
		return ast.ModifierOpen
	case p.buf.IsIdentifierOf("final"):
		p.buf.Next()
		return ast.ModifierFinal
	default:
		return ast.ModifierNone
	}
}

// parseDeclaration parses `AccessMod? MemberMod? (FunctionDecl |
// VariableDecl | ClassDecl)` (spec §4.3).
func (p *Parser) parseDeclaration() (ast.Declaration, error) {
	p.buf.SkipWhitespaces()
	start := p.buf.Position()
	access := p.parseAccessModifier()
	p.buf.SkipWhitespaces()
	modifier := p.parseMemberModifier()
	p.buf.SkipWhitespaces()

	switch {
	case p.buf.IsIdentifierOf("fn") || p.buf.IsIdentifierOf("operator"):
		return p.parseFunctionDeclaration(start, access, modifier)
	case p.buf.IsIdentifierOf("var") || p.buf.IsIdentifierOf("val"):
		return p.parseVariableDeclaration(start, access, modifier)
	case p.buf.IsIdentifierOf("class"):
		return p.parseClassDeclaration(start, access, modifier)
	default:
		return nil, p.errCode(syntaxerr.ErrUnexpectedToken, "expected a function, variable, or class declaration")
	}
}

// parseTopLevelDeclaration enforces spec §4.3's "Top-level constraints":
// only functions, variables, and classes are permitted, and top-level
// functions/variables may not carry a member modifier other than native.
// Grounded on the original parser's is_top_level_declaration gate
// (SPEC_FULL.md §4 item 4), generalized to this grammar's modifier set.
func (p *Parser) parseTopLevelDeclaration() (ast.Declaration, error) {
	decl, err := p.parseDeclaration()
	if err != nil {
		return nil, err
	}
	switch d := decl.(type) {
	case *ast.FunctionDeclaration:
		if d.Modifier != ast.ModifierNone && d.Modifier != ast.ModifierNative {
			return nil, p.errCode(syntaxerr.ErrInvalidModifier,
				"top-level function may only carry the native modifier, got %q", d.Modifier)
		}
	case *ast.VariableDeclaration:
		if d.Modifier != ast.ModifierNone && d.Modifier != ast.ModifierNative {
			return nil, p.errCode(syntaxerr.ErrInvalidModifier,
				"top-level variable may only carry the native modifier, got %q", d.Modifier)
		}
	case *ast.ClassDeclaration:
		// Class declarations are unrestricted at top level beyond the
		// private/native checks already enforced in parseClassDeclaration.
	default:
		return nil, p.errCode(syntaxerr.ErrInvalidTopLevel, "only functions, variables, and classes are permitted at the top level")
	}
	return decl, nil
}
