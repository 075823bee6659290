package ast

import (
	"fmt"
	"strings"
)

// Print renders prog as an ASCII tree: a hyphen and the node kind,
// followed by location, identifier/operator and resolved type where
// available, with `|` marking a non-last child and a backtick marking a
// last child at each depth.
func Print(prog *Program) string {
	var sb strings.Builder
	for i, d := range prog.Declarations {
		printNode(&sb, d, "", i == len(prog.Declarations)-1)
	}
	return sb.String()
}

func printNode(sb *strings.Builder, n Node, prefix string, last bool) {
	branch := "|-"
	childPrefix := prefix + "| "
	if last {
		branch = "`-"
		childPrefix = prefix + "  "
	}
	sb.WriteString(prefix)
	sb.WriteString(branch)
	sb.WriteString(describe(n))
	sb.WriteString("\n")

	children := childrenOf(n)
	for i, c := range children {
		printNode(sb, c, childPrefix, i == len(children)-1)
	}
}

// describe renders one node's own line: kind, location, and whatever
// identifying detail (name, operator, literal value, resolved type) that
// kind carries.
func describe(n Node) string {
	pos := n.Pos().String()
	switch v := n.(type) {
	case *VarDecl:
		return fmt.Sprintf("VarDecl <%s> %s%s", pos, v.Name.Name, typeSuffix(v.Type))
	case *ConstDecl:
		return fmt.Sprintf("ConstDecl <%s> %s%s", pos, v.Name.Name, typeSuffix(v.Type))
	case *Param:
		return fmt.Sprintf("Param <%s> %s %s", pos, v.Name.Name, v.Type.String())
	case *FuncDecl:
		return fmt.Sprintf("FuncDecl <%s> %s", pos, v.Name.Name)
	case *BlockStmt:
		return fmt.Sprintf("Block <%s>", pos)
	case *DeclStmt:
		return fmt.Sprintf("DeclStmt <%s>", pos)
	case *ExprStmt:
		return fmt.Sprintf("ExprStmt <%s>", pos)
	case *AssignStmt:
		return fmt.Sprintf("Assign <%s>", pos)
	case *IfStmt:
		return fmt.Sprintf("If <%s>", pos)
	case *WhileStmt:
		return fmt.Sprintf("While <%s>", pos)
	case *ForStmt:
		return fmt.Sprintf("For <%s>", pos)
	case *ReturnStmt:
		return fmt.Sprintf("Return <%s>", pos)
	case *Identifier:
		return fmt.Sprintf("Identifier <%s> %s%s", pos, v.Name, resolvedSuffix(v))
	case *IntLiteral:
		return fmt.Sprintf("IntLiteral <%s> %s%s", pos, v.Token.Literal, resolvedSuffix(v))
	case *FloatLiteral:
		return fmt.Sprintf("FloatLiteral <%s> %s%s", pos, v.Token.Literal, resolvedSuffix(v))
	case *StringLiteral:
		return fmt.Sprintf("StringLiteral <%s> %q%s", pos, v.Value, resolvedSuffix(v))
	case *BoolLiteral:
		return fmt.Sprintf("BoolLiteral <%s> %s%s", pos, v.Token.Literal, resolvedSuffix(v))
	case *NilLiteral:
		return fmt.Sprintf("NilLiteral <%s>%s", pos, resolvedSuffix(v))
	case *UnaryExpr:
		return fmt.Sprintf("Unary <%s> %s%s", pos, v.Operator, resolvedSuffix(v))
	case *BinaryExpr:
		return fmt.Sprintf("Binary <%s> %s%s", pos, v.Operator, resolvedSuffix(v))
	case *CallExpr:
		return fmt.Sprintf("Call <%s> %s%s", pos, v.Callee.Name, resolvedSuffix(v))
	case *TypeAnnotation:
		return fmt.Sprintf("Type <%s> %s", pos, v.Token.Literal)
	default:
		return fmt.Sprintf("%T <%s>", n, pos)
	}
}

func typeSuffix(t *TypeAnnotation) string {
	if t == nil {
		return ""
	}
	return " " + t.String()
}

func resolvedSuffix(e Expression) string {
	if e.Info().Type == nil {
		return ""
	}
	return " : " + e.Info().Type.Name()
}

// childrenOf returns n's direct subtree nodes in source order.
func childrenOf(n Node) []Node {
	switch v := n.(type) {
	case *VarDecl:
		return exprChildren(v.Value)
	case *ConstDecl:
		return exprChildren(v.Value)
	case *FuncDecl:
		var out []Node
		for _, p := range v.Params {
			out = append(out, p)
		}
		out = append(out, v.Body)
		return out
	case *BlockStmt:
		var out []Node
		for _, s := range v.Statements {
			out = append(out, s)
		}
		return out
	case *DeclStmt:
		return []Node{v.Decl}
	case *ExprStmt:
		return []Node{v.Expr}
	case *AssignStmt:
		return []Node{v.Target, v.Value}
	case *IfStmt:
		out := []Node{v.Condition, v.Then}
		if v.Else != nil {
			out = append(out, v.Else)
		}
		return out
	case *WhileStmt:
		return []Node{v.Condition, v.Body}
	case *ForStmt:
		var out []Node
		if v.Init != nil {
			out = append(out, v.Init)
		}
		if v.Condition != nil {
			out = append(out, v.Condition)
		}
		if v.Post != nil {
			out = append(out, v.Post)
		}
		out = append(out, v.Body)
		return out
	case *ReturnStmt:
		return exprChildren(v.Value)
	case *UnaryExpr:
		return []Node{v.Operand}
	case *BinaryExpr:
		return []Node{v.Left, v.Right}
	case *CallExpr:
		var out []Node
		for _, a := range v.Args {
			out = append(out, a)
		}
		return out
	default:
		return nil
	}
}

// exprChildren lifts a possibly-nil Expression into a Node slice,
// dropping it rather than emitting a nil entry.
func exprChildren(e Expression) []Node {
	if e == nil {
		return nil
	}
	return []Node{e}
}
