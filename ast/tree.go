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

package ast

import (
	"fmt"
	"io"
	"strings"
)

// TreeString renders n in canonical tree form, for example
//
//	ProgramNode{ExprStmt{AssignExpr(=){NameExpr{a}, NameExpr{b}}}}
//
// Rendering never modifies the tree, and the same tree always renders to
// the same string.
func TreeString(n Node) string {
	var out strings.Builder
	_ = WriteTree(&out, n)
	return out.String()
}

// WriteTree is like [TreeString], but writes to w. It returns the first
// error returned by w.
func WriteTree(w io.Writer, n Node) error {
	tw := treeWriter{w: w}
	tw.node(n)
	return tw.err
}

type treeWriter struct {
	w   io.Writer
	err error
}

func (tw *treeWriter) str(s string) {
	if tw.err == nil {
		_, tw.err = io.WriteString(tw.w, s)
	}
}

func (tw *treeWriter) node(n Node) {
	switch n := n.(type) {
	case *Program:
		tw.str("ProgramNode{")
		for i, s := range n.Elements {
			tw.sep(i)
			tw.node(s)
		}
		tw.str("}")

	case *BlockStmt:
		tw.str("Block{")
		for i, s := range n.Stmts {
			tw.sep(i)
			tw.node(s)
		}
		tw.str("}")

	case *VarStmt:
		tw.str("Var{")
		for i, name := range n.Names {
			tw.sep(i)
			tw.str(name.Text)
		}
		tw.str("}")

	case *EmptyStmt:
		tw.str("Empty{}")

	case *IfStmt:
		tw.str("If(")
		tw.node(n.Cond)
		tw.str("){")
		tw.node(n.Body)
		tw.str("}")

	case *ExprStmt:
		tw.str("ExprStmt{")
		tw.node(n.Expr)
		tw.str("}")

	case *BinaryOpExpr:
		tw.op("BinaryOpExpr", n.Op.Text, n.Left, n.Right)

	case *CondExpr:
		tw.str("CondExpr{")
		tw.node(n.Cond)
		tw.str(", ")
		tw.node(n.Then)
		tw.str(", ")
		tw.node(n.Else)
		tw.str("}")

	case *AssignExpr:
		tw.op("AssignExpr", n.Op.Text, n.Left, n.Right)

	case *CommaExpr:
		tw.str("CommaExpr{")
		tw.node(n.Left)
		tw.str(", ")
		tw.node(n.Right)
		tw.str("}")

	case *NameExpr:
		tw.str("NameExpr{")
		tw.str(n.Name.Text)
		tw.str("}")

	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
}

func (tw *treeWriter) op(name, op string, left, right Expr) {
	tw.str(name)
	tw.str("(")
	tw.str(op)
	tw.str("){")
	tw.node(left)
	tw.str(", ")
	tw.node(right)
	tw.str("}")
}

func (tw *treeWriter) sep(i int) {
	if i > 0 {
		tw.str(", ")
	}
}

// Walk visits n and its descendants in pre-order, in the same order they
// appear in [TreeString]. If fn returns false, the children of that node are
// skipped.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	switch n := n.(type) {
	case *Program:
		for _, s := range n.Elements {
			Walk(s, fn)
		}
	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, fn)
		}
	case *IfStmt:
		Walk(n.Cond, fn)
		Walk(n.Body, fn)
	case *ExprStmt:
		Walk(n.Expr, fn)
	case *BinaryOpExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *CondExpr:
		Walk(n.Cond, fn)
		Walk(n.Then, fn)
		Walk(n.Else, fn)
	case *AssignExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *CommaExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	}
}
