package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"kermlc/internal/ast"
	"kermlc/internal/source"
)

// CheckRangeInvariants walks every node reachable from root and checks
// spec §8's range-containment property: for every AST node N with
// children C1..Cn, range(N).start <= min(range(Ci).start) and
// range(N).end >= max(range(Ci).end). It also checks that every span
// (node and file) stays within the bounds of sf's content and names the
// same file.
func CheckRangeInvariants(tree *ast.Tree, root ast.MemberID, sf *source.File) error {
	if tree == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	if !root.IsValid() {
		return fmt.Errorf("invalid root member id")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	c := &rangeChecker{tree: tree, fileID: sf.ID, limit: lenContent}
	return c.checkMember(root)
}

type rangeChecker struct {
	tree   *ast.Tree
	fileID source.FileID
	limit  uint32
}

// withinFile reports whether sp sits inside the checked file's content,
// tolerating the zero span builtin/synthetic nodes use when they have no
// location in user source.
func (c *rangeChecker) withinFile(sp source.Span) error {
	if sp == (source.Span{}) {
		return nil
	}
	if sp.File != c.fileID {
		return fmt.Errorf("span %v names a different file than %d", sp, c.fileID)
	}
	if sp.Start > sp.End {
		return fmt.Errorf("span %v has start after end", sp)
	}
	if sp.End > c.limit {
		return fmt.Errorf("span %v ends beyond file content length %d", sp, c.limit)
	}
	return nil
}

// covers reports whether parent contains child, treating a zero child
// span (an unlocated builtin reference) as trivially covered.
func (c *rangeChecker) covers(parent, child source.Span) error {
	if child == (source.Span{}) {
		return nil
	}
	if child.Start < parent.Start || child.End > parent.End {
		return fmt.Errorf("child span %v is not contained in parent span %v", child, parent)
	}
	return nil
}

func (c *rangeChecker) checkMember(id ast.MemberID) error {
	if !id.IsValid() {
		return nil
	}
	m := c.tree.Member(id)
	if m == nil {
		return fmt.Errorf("nil member for id=%d", id)
	}
	if err := c.withinFile(m.Span); err != nil {
		return err
	}

	checkChild := func(childSpan source.Span) error {
		if err := c.withinFile(childSpan); err != nil {
			return err
		}
		return c.covers(m.Span, childSpan)
	}

	switch m.Kind {
	case ast.MemberNamespace:
		ns, _ := c.tree.Namespace(id)
		return c.checkMemberList(m.Span, ns.Members)
	case ast.MemberPackage:
		pkg, _ := c.tree.Package(id)
		return c.checkMemberList(m.Span, pkg.Members)
	case ast.MemberClassifier:
		cl, _ := c.tree.Classifier(id)
		if err := c.checkRelationships(m.Span, cl.Relationships); err != nil {
			return err
		}
		if cl.Multiplicity != nil {
			if err := c.checkMultiplicity(m.Span, cl.Multiplicity); err != nil {
				return err
			}
		}
		return c.checkMemberList(m.Span, cl.Members)
	case ast.MemberFeature:
		f, _ := c.tree.Feature(id)
		if err := c.checkRelationships(m.Span, f.Relationships); err != nil {
			return err
		}
		if f.Multiplicity != nil {
			if err := c.checkMultiplicity(m.Span, f.Multiplicity); err != nil {
				return err
			}
		}
		if f.HasInit {
			if err := checkChild(c.tree.Expr(f.Init).Span); err != nil {
				return err
			}
			if err := c.checkExpr(f.Init); err != nil {
				return err
			}
		}
		return c.checkMemberList(m.Span, f.Members)
	case ast.MemberImport, ast.MemberAlias, ast.MemberComment:
		return nil
	default:
		return fmt.Errorf("unknown member kind %v", m.Kind)
	}
}

func (c *rangeChecker) checkMemberList(parent source.Span, first ast.MemberID) error {
	for _, id := range c.tree.MemberList(first) {
		child := c.tree.Member(id)
		if child == nil {
			return fmt.Errorf("nil member for id=%d", id)
		}
		if err := c.withinFile(child.Span); err != nil {
			return err
		}
		if err := c.covers(parent, child.Span); err != nil {
			return err
		}
		if err := c.checkMember(id); err != nil {
			return err
		}
	}
	return nil
}

func (c *rangeChecker) checkRelationships(parent source.Span, rels []ast.Relationship) error {
	for _, rel := range rels {
		if err := c.withinFile(rel.Span); err != nil {
			return err
		}
		if err := c.covers(parent, rel.Span); err != nil {
			return err
		}
	}
	return nil
}

func (c *rangeChecker) checkMultiplicity(parent source.Span, m *ast.Multiplicity) error {
	if err := c.withinFile(m.Span); err != nil {
		return err
	}
	if err := c.covers(parent, m.Span); err != nil {
		return err
	}
	if m.HasLower {
		if err := c.covers(m.Span, c.tree.Expr(m.Lower).Span); err != nil {
			return err
		}
		if err := c.checkExpr(m.Lower); err != nil {
			return err
		}
	}
	if m.HasUpper {
		if err := c.covers(m.Span, c.tree.Expr(m.Upper).Span); err != nil {
			return err
		}
		if err := c.checkExpr(m.Upper); err != nil {
			return err
		}
	}
	return nil
}

func (c *rangeChecker) checkExpr(id ast.ExprID) error {
	if !id.IsValid() {
		return nil
	}
	e := c.tree.Expr(id)
	if e == nil {
		return fmt.Errorf("nil expr for id=%d", id)
	}
	if err := c.withinFile(e.Span); err != nil {
		return err
	}

	checkChild := func(child ast.ExprID) error {
		if !child.IsValid() {
			return nil
		}
		childSpan := c.tree.Expr(child).Span
		if err := c.withinFile(childSpan); err != nil {
			return err
		}
		if err := c.covers(e.Span, childSpan); err != nil {
			return err
		}
		return c.checkExpr(child)
	}

	switch e.Kind {
	case ast.ExprIntLit, ast.ExprRealLit, ast.ExprStringLit, ast.ExprBoolLit, ast.ExprNullLit, ast.ExprName:
		return nil
	case ast.ExprChain:
		ch, _ := c.tree.Chain(id)
		return checkChild(ch.Base)
	case ast.ExprInvoke:
		inv, _ := c.tree.Invoke(id)
		if err := checkChild(inv.Target); err != nil {
			return err
		}
		for _, arg := range inv.Args {
			if err := checkChild(arg); err != nil {
				return err
			}
		}
		return nil
	case ast.ExprIndex:
		ix, _ := c.tree.Index(id)
		if err := checkChild(ix.Base); err != nil {
			return err
		}
		return checkChild(ix.Index)
	case ast.ExprUnary:
		u, _ := c.tree.Unary(id)
		return checkChild(u.Operand)
	case ast.ExprBinary:
		b, _ := c.tree.Binary(id)
		if err := checkChild(b.Left); err != nil {
			return err
		}
		return checkChild(b.Right)
	case ast.ExprConditional:
		cond, _ := c.tree.Conditional(id)
		if err := checkChild(cond.Cond); err != nil {
			return err
		}
		if err := checkChild(cond.Then); err != nil {
			return err
		}
		return checkChild(cond.Else)
	default:
		return fmt.Errorf("unknown expr kind %v", e.Kind)
	}
}
