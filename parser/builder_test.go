// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/oxyjs/ast"
	"github.com/bufbuild/oxyjs/lexer"
	"github.com/bufbuild/oxyjs/reporter"
	"github.com/bufbuild/oxyjs/source"
	"github.com/bufbuild/oxyjs/token"
)

func parseString(t *testing.T, text string, opts Options) (*ast.Program, error) {
	t.Helper()
	b := NewBuilder(lexer.New(source.NewStream("test.js", []byte(text))), opts)
	return b.ParseProgram()
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input, want string
	}{
		{"", "ProgramNode{}"},
		{"  // nothing here\n/* at all */", "ProgramNode{}"},
		{"x;", "ProgramNode{ExprStmt{NameExpr{x}}}"},
		{"var x, y;", "ProgramNode{Var{x, y}}"},
		{"if (c) ;", "ProgramNode{If(NameExpr{c}){Empty{}}}"},
		{"a + b;", "ProgramNode{ExprStmt{BinaryOpExpr(+){NameExpr{a}, NameExpr{b}}}}"},
		{"a = b;", "ProgramNode{ExprStmt{AssignExpr(=){NameExpr{a}, NameExpr{b}}}}"},
		{"c ? a : b;", "ProgramNode{ExprStmt{CondExpr{NameExpr{c}, NameExpr{a}, NameExpr{b}}}}"},
		{"a, b;", "ProgramNode{ExprStmt{CommaExpr{NameExpr{a}, NameExpr{b}}}}"},

		// Associativity.
		{"a - b - c;", "ProgramNode{ExprStmt{BinaryOpExpr(-){BinaryOpExpr(-){NameExpr{a}, NameExpr{b}}, NameExpr{c}}}}"},
		{"a = b = c;", "ProgramNode{ExprStmt{AssignExpr(=){NameExpr{a}, AssignExpr(=){NameExpr{b}, NameExpr{c}}}}}"},
		{"a, b, c;", "ProgramNode{ExprStmt{CommaExpr{CommaExpr{NameExpr{a}, NameExpr{b}}, NameExpr{c}}}}"},
		{"a ? b : c ? d : e;", "ProgramNode{ExprStmt{CondExpr{NameExpr{a}, NameExpr{b}, CondExpr{NameExpr{c}, NameExpr{d}, NameExpr{e}}}}}"},

		// Precedence.
		{"a || b && c;", "ProgramNode{ExprStmt{BinaryOpExpr(||){NameExpr{a}, BinaryOpExpr(&&){NameExpr{b}, NameExpr{c}}}}}"},
		{"a && b || c;", "ProgramNode{ExprStmt{BinaryOpExpr(||){BinaryOpExpr(&&){NameExpr{a}, NameExpr{b}}, NameExpr{c}}}}"},
		{"a + b * c;", "ProgramNode{ExprStmt{BinaryOpExpr(+){NameExpr{a}, BinaryOpExpr(*){NameExpr{b}, NameExpr{c}}}}}"},
		{"a * b + c;", "ProgramNode{ExprStmt{BinaryOpExpr(+){BinaryOpExpr(*){NameExpr{a}, NameExpr{b}}, NameExpr{c}}}}"},
		{"a | b ^ c & d;", "ProgramNode{ExprStmt{BinaryOpExpr(|){NameExpr{a}, BinaryOpExpr(^){NameExpr{b}, BinaryOpExpr(&){NameExpr{c}, NameExpr{d}}}}}}"},
		{"a == b < c;", "ProgramNode{ExprStmt{BinaryOpExpr(==){NameExpr{a}, BinaryOpExpr(<){NameExpr{b}, NameExpr{c}}}}}"},
		{"a << b + c;", "ProgramNode{ExprStmt{BinaryOpExpr(<<){NameExpr{a}, BinaryOpExpr(+){NameExpr{b}, NameExpr{c}}}}}"},
		{"a in b instanceof c;", "ProgramNode{ExprStmt{BinaryOpExpr(instanceof){BinaryOpExpr(in){NameExpr{a}, NameExpr{b}}, NameExpr{c}}}}"},
		{"a === b !== c;", "ProgramNode{ExprStmt{BinaryOpExpr(!==){BinaryOpExpr(===){NameExpr{a}, NameExpr{b}}, NameExpr{c}}}}"},
		{"a = b ? c : d = e;", "ProgramNode{ExprStmt{AssignExpr(=){NameExpr{a}, CondExpr{NameExpr{b}, NameExpr{c}, AssignExpr(=){NameExpr{d}, NameExpr{e}}}}}}"},
		{"a ? b = c : d;", "ProgramNode{ExprStmt{CondExpr{NameExpr{a}, AssignExpr(=){NameExpr{b}, NameExpr{c}}, NameExpr{d}}}}"},
		{"a += b, c >>>= d;", "ProgramNode{ExprStmt{CommaExpr{AssignExpr(+=){NameExpr{a}, NameExpr{b}}, AssignExpr(>>>=){NameExpr{c}, NameExpr{d}}}}}"},
		{"a || b ? c : d;", "ProgramNode{ExprStmt{CondExpr{BinaryOpExpr(||){NameExpr{a}, NameExpr{b}}, NameExpr{c}, NameExpr{d}}}}"},

		// Statements.
		{"{}", "ProgramNode{Block{}}"},
		{"{ a; { } var x; }", "ProgramNode{Block{ExprStmt{NameExpr{a}}, Block{}, Var{x}}}"},
		{"if (a, b) if (c) {}", "ProgramNode{If(CommaExpr{NameExpr{a}, NameExpr{b}}){If(NameExpr{c}){Block{}}}}"},
		{"x;;y;", "ProgramNode{ExprStmt{NameExpr{x}}, Empty{}, ExprStmt{NameExpr{y}}}"},
		{"var x, x;", "ProgramNode{Var{x, x}}"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			prog, err := parseString(t, tt.input, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ast.TreeString(prog))

			// Rendering is deterministic, across parses too.
			again, err := parseString(t, tt.input, Options{})
			require.NoError(t, err)
			assert.Equal(t, ast.TreeString(prog), ast.TreeString(again))
		})
	}
}

func TestVarOrder(t *testing.T) {
	t.Parallel()

	prog, err := parseString(t, "var x, y, z;", Options{})
	require.NoError(t, err)
	require.Len(t, prog.Elements, 1)

	v, ok := prog.Elements[0].(*ast.VarStmt)
	require.True(t, ok)
	var names []string
	for _, name := range v.Names {
		assert.Equal(t, token.Ident, name.Kind)
		names = append(names, name.Text)
	}
	assert.Equal(t, []string{"x", "y", "z"}, names)
	assert.Equal(t, "var x, y, z", v.Span().Text())
}

func TestIfWithoutElse(t *testing.T) {
	t.Parallel()

	prog, err := parseString(t, "if (c) ;", Options{})
	require.NoError(t, err)
	require.Len(t, prog.Elements, 1)

	stmt, ok := prog.Elements[0].(*ast.IfStmt)
	require.True(t, ok)
	cond, ok := stmt.Cond.(*ast.NameExpr)
	require.True(t, ok)
	assert.Equal(t, "c", cond.Name.Text)
	assert.IsType(t, &ast.EmptyStmt{}, stmt.Body)
}

func TestEmptyProgram(t *testing.T) {
	t.Parallel()

	prog, err := parseString(t, "", Options{})
	require.NoError(t, err)
	assert.Empty(t, prog.Elements)
	assert.Equal(t, "ProgramNode{}", ast.TreeString(prog))
	assert.Equal(t, "test.js", prog.File.Name())
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input, want string
	}{
		{"if () ;", "test.js:1:5: unexpected `)` in if statement condition; expected expression"},
		{"if (a ;", "test.js:1:7: unexpected `;` in if statement condition; expected `)`"},
		{"if a) ;", "test.js:1:4: unexpected identifier `a` in if statement; expected `(`"},
		{"if (a)", "test.js:1:7: unexpected end of input in if statement; expected statement"},
		{"var ;", "test.js:1:5: unexpected `;` in variable declaration; expected identifier"},
		{"var a b;", "test.js:1:7: unexpected identifier `b` in variable declaration; expected `;` or `,`"},
		{"var a", "test.js:1:6: unexpected end of input in variable declaration; expected `;` or `,`"},
		{"var if;", "test.js:1:5: unexpected keyword `if` in variable declaration; expected identifier"},
		{"a", "test.js:1:2: unexpected end of input in expression statement; expected `;`"},
		{"a b;", "test.js:1:3: unexpected identifier `b` in expression statement; expected `;`"},
		{"a\rb;", "test.js:2:1: unexpected identifier `b` in expression statement; expected `;`"},
		{"a +;", "test.js:1:4: unexpected `;` in binary expression; expected expression"},
		{"a ? b;", "test.js:1:6: unexpected `;` in conditional expression; expected `:`"},
		{"a = ;", "test.js:1:5: unexpected `;` in assignment expression; expected expression"},
		{"a, ;", "test.js:1:4: unexpected `;` in comma expression; expected expression"},
		{"{ a; ", "test.js:1:6: unexpected end of input in block; expected statement or `}`"},
		{"}", "test.js:1:1: unexpected `}` in program; expected statement"},
		{"if (a) ; else ;", "test.js:1:10: unexpected keyword `else` in program; expected statement"},
		{"{ ) }", "test.js:1:3: unexpected `)` in block; expected statement"},
		{"1 = 2;", "test.js:1:1: unexpected number literal `1` in program; expected statement"},
		{"a = 'x';", "test.js:1:5: unexpected string literal `'x'` in assignment expression; expected expression"},
		{"x;;y)", "test.js:1:5: unexpected `)` in expression statement; expected `;`"},
		{"x;\n;y", "test.js:2:3: unexpected end of input in expression statement; expected `;`"},
		{"a = #;", "test.js:1:5: illegal character '#'"},
		{"a = b /* open", "test.js:1:7: unterminated block comment"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			prog, err := parseString(t, tt.input, Options{})
			require.EqualError(t, err, tt.want)
			assert.Nil(t, prog)
			assert.True(t, IsSyntaxError(err))

			var ewp reporter.ErrorWithPos
			require.ErrorAs(t, err, &ewp)
		})
	}
}

func TestErrUnexpected(t *testing.T) {
	t.Parallel()

	_, err := parseString(t, "x;;y)", Options{})
	var unexpected *ErrUnexpected
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, token.RParen, unexpected.Got.Kind)
	assert.Equal(t, ")", unexpected.Got.Text)
	assert.Equal(t, 4, unexpected.Got.Span.Start)

	_, err = parseString(t, "a = #;", Options{})
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	assert.False(t, errors.As(err, &unexpected))
}

func TestAssignTargets(t *testing.T) {
	t.Parallel()

	// By default, targets are not checked.
	prog, err := parseString(t, "a + b = c;", Options{})
	require.NoError(t, err)
	assert.Equal(t, "ProgramNode{ExprStmt{AssignExpr(=){BinaryOpExpr(+){NameExpr{a}, NameExpr{b}}, NameExpr{c}}}}", ast.TreeString(prog))

	prog, err = parseString(t, "a ? b : c = d;", Options{})
	require.NoError(t, err)
	assert.Equal(t, "ProgramNode{ExprStmt{CondExpr{NameExpr{a}, NameExpr{b}, AssignExpr(=){NameExpr{c}, NameExpr{d}}}}}", ast.TreeString(prog))

	strict := Options{CheckAssignTargets: true}
	_, err = parseString(t, "a + b = c;", strict)
	require.EqualError(t, err, "test.js:1:1: invalid assignment target: cannot assign to binary expression")
	var target *ErrInvalidTarget
	require.ErrorAs(t, err, &target)
	assert.Equal(t, ast.KindBinaryOpExpr, target.Target.Kind())

	_, err = parseString(t, "x = a || b ? c : d += e;", strict)
	require.NoError(t, err)
	_, err = parseString(t, "x = a || b -= e;", strict)
	require.EqualError(t, err, "test.js:1:5: invalid assignment target: cannot assign to binary expression")

	prog, err = parseString(t, "a = b = c;", strict)
	require.NoError(t, err)
	assert.Equal(t, "ProgramNode{ExprStmt{AssignExpr(=){NameExpr{a}, AssignExpr(=){NameExpr{b}, NameExpr{c}}}}}", ast.TreeString(prog))

	// Literals are never expressions, with or without the check.
	_, err = parseString(t, "1 = 2;", strict)
	require.EqualError(t, err, "test.js:1:1: unexpected number literal `1` in program; expected statement")
}

func TestMaxDepth(t *testing.T) {
	t.Parallel()

	_, err := parseString(t, "a = a = a = a = a = a;", Options{MaxDepth: 5})
	require.EqualError(t, err, "test.js:1:17: nesting exceeds the maximum depth of 5")
	var tooDeep *ErrTooDeep
	require.ErrorAs(t, err, &tooDeep)
	assert.Equal(t, 5, tooDeep.Limit)

	_, err = parseString(t, "a = a = a = a;", Options{MaxDepth: 5})
	require.NoError(t, err)

	_, err = parseString(t, "{{{{}}}}", Options{MaxDepth: 3})
	require.EqualError(t, err, "test.js:1:4: nesting exceeds the maximum depth of 3")

	// The default limit rejects absurd nesting instead of overflowing.
	deep := strings.Repeat("{", 5000) + strings.Repeat("}", 5000)
	_, err = parseString(t, deep, Options{})
	require.ErrorAs(t, err, &tooDeep)
	assert.Equal(t, DefaultMaxDepth, tooDeep.Limit)

	fine := strings.Repeat("{", 500) + strings.Repeat("}", 500)
	_, err = parseString(t, fine, Options{})
	require.NoError(t, err)
}

func TestTrace(t *testing.T) {
	t.Parallel()

	var trace bytes.Buffer
	_, err := parseString(t, "if (a) b;", Options{Trace: &trace})
	require.NoError(t, err)
	assert.Equal(t,
		"if statement at 1:1\n"+
			"  assignment expression at 1:5\n"+
			"  expression statement at 1:8\n"+
			"    assignment expression at 1:8\n",
		trace.String(),
	)
}

func TestParseHandler(t *testing.T) {
	t.Parallel()

	var (
		mu       sync.Mutex
		warnings []string
	)
	rep := reporter.NewReporter(nil, func(err reporter.ErrorWithPos) {
		mu.Lock()
		defer mu.Unlock()
		warnings = append(warnings, err.Error())
	})

	prog, err := Parse("test.js", strings.NewReader("var x, y, x;"), reporter.NewHandler(rep), Options{})
	require.NoError(t, err)
	assert.Equal(t, "ProgramNode{Var{x, y, x}}", ast.TreeString(prog))
	assert.Equal(t, []string{"test.js:1:11: variable `x` is declared more than once in this statement"}, warnings)

	// Nil handler.
	_, err = Parse("test.js", strings.NewReader("a ="), nil, Options{})
	require.EqualError(t, err, "test.js:1:4: unexpected end of input in assignment expression; expected expression")

	// A reporter that swallows errors still fails the parse.
	swallow := reporter.NewReporter(func(reporter.ErrorWithPos) error { return nil }, nil)
	prog, err = Parse("test.js", strings.NewReader("a ="), reporter.NewHandler(swallow), Options{})
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	assert.Nil(t, prog)
}

func TestParseReadError(t *testing.T) {
	t.Parallel()

	_, err := Parse("test.js", iotest.ErrReader(errors.New("boom")), nil, Options{})
	require.EqualError(t, err, "reading test.js: boom")
	assert.False(t, IsSyntaxError(err))
}

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"", "var x, y;", "if (a) { b = c ? d : e, f; }", "a || b && c | d ^ e & f == g < h << i + j * k;",
		"1 = 2;", "'unterminated", "/*", "{{{{", "a = = b", "\xff", "var ;;",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, text string) {
		prog, err := parseString(t, text, Options{})
		if err != nil {
			assert.Nil(t, prog)
			assert.True(t, IsSyntaxError(err), "%v", err)
			return
		}
		// A successful parse always renders.
		assert.True(t, strings.HasPrefix(ast.TreeString(prog), "ProgramNode{"))
	})
}
