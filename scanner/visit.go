package scanner

import (
	"github.com/glazari/javaimports/astview"
	"github.com/glazari/javaimports/hierarchy"
	"github.com/glazari/javaimports/scope"
)

// visit dispatches on n's Kind and scans it within cur, the currently
// active scope. It is the single traversal spec §4.1 describes: every
// interesting node either opens a scope, declares a binding, resolves a
// usage, or — for anything this scanner has no specific rule for —
// recurses into its named children unchanged (spec §4.1's error
// semantics for unrecognized constructs).
func (s *scanner) visit(cur *scope.Scope, n astview.Node) error {
	if n == nil {
		return nil
	}

	switch n.Kind() {
	case astview.KindClassDecl, astview.KindInterfaceDecl, astview.KindEnumDecl,
		astview.KindAnnotationDecl, astview.KindRecordDecl:
		return s.visitTypeDecl(cur, n)

	case astview.KindIdentifier, astview.KindTypeIdentifier:
		cur.Resolve(scope.Identifier(n.Content()))
		return nil

	case astview.KindThis:
		cur.Resolve(scope.Identifier("this"))
		return nil

	case astview.KindSuper:
		cur.Resolve(scope.Identifier("super"))
		return nil

	case astview.KindFieldAccess:
		return s.visit(cur, n.ChildByField("object"))

	case astview.KindScopedIdentifier:
		if scopeNode := n.ChildByField("scope"); scopeNode != nil {
			return s.visit(cur, scopeNode)
		}
		children := n.NamedChildren()
		if len(children) > 0 {
			return s.visit(cur, children[0])
		}
		return nil

	case astview.KindGenericType:
		children := n.NamedChildren()
		if len(children) == 0 {
			return nil
		}
		if err := s.visit(cur, children[0]); err != nil {
			return err
		}
		if args := typeArguments(n); args != nil {
			for _, a := range args.NamedChildren() {
				if err := s.visit(cur, a); err != nil {
					return err
				}
			}
		}
		return nil

	case astview.KindMethodInvocation:
		if obj := n.ChildByField("object"); obj != nil {
			if err := s.visit(cur, obj); err != nil {
				return err
			}
		} else if name := n.ChildByField("name"); name != nil {
			cur.Resolve(scope.Identifier(name.Content()))
		}
		return s.visitChildren(cur, n.ChildByField("arguments"))

	case astview.KindObjectCreation:
		if typ := n.ChildByField("type"); typ != nil {
			if err := s.visit(cur, typ); err != nil {
				return err
			}
		}
		return s.visitChildren(cur, n.ChildByField("arguments"))

	case astview.KindLocalVarDecl:
		return s.visitLocalVarDecl(cur, n)

	case astview.KindFieldDecl:
		// Member fields are pre-declared when the enclosing class body
		// opens; here we scan the declared type and each declarator's
		// initializer as usages.
		if err := s.visit(cur, n.ChildByField("type")); err != nil {
			return err
		}
		for _, c := range n.NamedChildren() {
			if c.Kind() == astview.KindVariableDeclarator {
				if err := s.visit(cur, c.ChildByField("value")); err != nil {
					return err
				}
			}
		}
		return nil

	case astview.KindVariableDeclarator:
		return s.visit(cur, n.ChildByField("value"))

	case astview.KindMethodDecl, astview.KindConstructorDecl:
		return s.visitMethodOrConstructor(cur, n)

	case astview.KindLambdaExpression:
		return s.visitLambda(cur, n)

	case astview.KindForStatement:
		return s.visitFor(cur, n)

	case astview.KindEnhancedForStatement:
		return s.visitEnhancedFor(cur, n)

	case astview.KindTryStatement:
		return s.visitTry(cur, n)

	case astview.KindCatchClause:
		return s.visitCatch(cur, n)

	case astview.KindSwitchExpression:
		return s.visitSwitch(cur, n)

	case astview.KindBlock, astview.KindIfStatement, astview.KindWhileStatement,
		astview.KindDoStatement, astview.KindSynchronizedStatement, astview.KindFinallyClause:
		return s.visitNewScope(cur, n)

	default:
		return s.visitChildren(cur, n)
	}
}

// visitChildren recurses into every named child of n within cur,
// without opening a new scope.
func (s *scanner) visitChildren(cur *scope.Scope, n astview.Node) error {
	if n == nil {
		return nil
	}
	for _, c := range n.NamedChildren() {
		if err := s.visit(cur, c); err != nil {
			return err
		}
	}
	return nil
}

// visitNewScope opens a fresh child scope of cur, visits every named
// child of n within it, then bubbles residuals back to cur (spec
// §4.1's generic block scoping rule, used by bare blocks, if/while/do,
// synchronized, and finally clauses).
func (s *scanner) visitNewScope(cur *scope.Scope, n astview.Node) error {
	if err := s.checkCancelled(); err != nil {
		return err
	}
	child := scope.NewScope(cur)
	if err := s.visitChildren(child, n); err != nil {
		return err
	}
	child.BubbleTo(cur)
	return nil
}

func (s *scanner) visitLocalVarDecl(cur *scope.Scope, n astview.Node) error {
	if err := s.visit(cur, n.ChildByField("type")); err != nil {
		return err
	}
	for _, c := range n.NamedChildren() {
		if c.Kind() != astview.KindVariableDeclarator {
			continue
		}
		if err := s.visit(cur, c.ChildByField("value")); err != nil {
			return err
		}
		if name := c.ChildByField("name"); name != nil {
			cur.Declare(scope.Identifier(name.Content()), scope.NewVariableEntity(scope.Identifier(name.Content()), scope.Private, false))
		}
	}
	return nil
}

func (s *scanner) visitLambda(cur *scope.Scope, n astview.Node) error {
	if err := s.checkCancelled(); err != nil {
		return err
	}
	body := scope.NewScope(cur)

	if params := n.ChildByField("parameters"); params != nil {
		switch params.Kind() {
		case astview.KindIdentifier:
			body.Declare(scope.Identifier(params.Content()), scope.NewVariableEntity(scope.Identifier(params.Content()), scope.Private, false))
		case astview.KindFormalParameters:
			if err := s.visitFormalParameters(body, params); err != nil {
				return err
			}
		default: // inferred_parameters or similar: bare identifiers
			for _, p := range params.NamedChildren() {
				if p.Kind() == astview.KindIdentifier {
					body.Declare(scope.Identifier(p.Content()), scope.NewVariableEntity(scope.Identifier(p.Content()), scope.Private, false))
				}
			}
		}
	}

	if err := s.visit(body, n.ChildByField("body")); err != nil {
		return err
	}
	body.BubbleTo(cur)
	return nil
}

func (s *scanner) visitFor(cur *scope.Scope, n astview.Node) error {
	if err := s.checkCancelled(); err != nil {
		return err
	}
	forScope := scope.NewScope(cur)
	if err := s.visitChildren(forScope, n); err != nil {
		return err
	}
	forScope.BubbleTo(cur)
	return nil
}

func (s *scanner) visitEnhancedFor(cur *scope.Scope, n astview.Node) error {
	if err := s.checkCancelled(); err != nil {
		return err
	}
	forScope := scope.NewScope(cur)

	if err := s.visit(forScope, n.ChildByField("value")); err != nil {
		return err
	}
	if name := n.ChildByField("name"); name != nil {
		forScope.Declare(scope.Identifier(name.Content()), scope.NewVariableEntity(scope.Identifier(name.Content()), scope.Private, false))
	}
	if err := s.visit(forScope, n.ChildByField("body")); err != nil {
		return err
	}

	forScope.BubbleTo(cur)
	return nil
}

// visitTry implements try/resources/catch/finally isolation (spec
// §4.1): resources bind within the try block only; each catch clause is
// its own scope seeing only its parameter and the enclosing scope;
// finally sees neither.
func (s *scanner) visitTry(cur *scope.Scope, n astview.Node) error {
	if err := s.checkCancelled(); err != nil {
		return err
	}

	bodyParent := cur
	if res := n.ChildByField("resources"); res != nil {
		resourceScope := scope.NewScope(cur)
		for _, r := range res.NamedChildren() {
			if err := s.visitResource(resourceScope, r); err != nil {
				return err
			}
		}
		bodyParent = resourceScope
	}

	if body := n.ChildByField("body"); body != nil {
		if err := s.visitNewScope(bodyParent, body); err != nil {
			return err
		}
		// Any residual left directly on a resource scope (none should be,
		// since resources are declared there, but defensive) never leaks
		// past the try: resources are invisible outside it by construction
		// of bodyParent's own scope boundary.
		if bodyParent != cur {
			bodyParent.BubbleTo(cur)
		}
	}

	for _, c := range n.NamedChildren() {
		if c.Kind() == astview.KindCatchClause {
			if err := s.visit(cur, c); err != nil {
				return err
			}
		}
	}
	if finallyClause := childOfKind(n, astview.KindFinallyClause); finallyClause != nil {
		if err := s.visit(cur, finallyClause); err != nil {
			return err
		}
	}
	return nil
}

func (s *scanner) visitResource(target *scope.Scope, r astview.Node) error {
	// A resource is either a local_variable_declaration-shaped binding or
	// a bare expression referencing an already-declared variable.
	if r.Kind() == astview.KindIdentifier {
		target.Resolve(scope.Identifier(r.Content()))
		return nil
	}
	if err := s.visit(target, r.ChildByField("type")); err != nil {
		return err
	}
	if err := s.visit(target, r.ChildByField("value")); err != nil {
		return err
	}
	if name := r.ChildByField("name"); name != nil {
		target.Declare(scope.Identifier(name.Content()), scope.NewVariableEntity(scope.Identifier(name.Content()), scope.Private, false))
	}
	return nil
}

// visitFormalParameters declares each formal (or spread) parameter of
// params into target and scans its declared type as a usage (spec
// §4.1's "every... type position... is looked up").
func (s *scanner) visitFormalParameters(target *scope.Scope, params astview.Node) error {
	if params == nil {
		return nil
	}
	for _, p := range params.NamedChildren() {
		switch p.Kind() {
		case astview.KindFormalParameter, astview.KindSpreadParameter:
			if err := s.visit(target, p.ChildByField("type")); err != nil {
				return err
			}
			if name := p.ChildByField("name"); name != nil {
				target.Declare(scope.Identifier(name.Content()), scope.NewVariableEntity(scope.Identifier(name.Content()), scope.Private, false))
			}
		}
	}
	return nil
}

func (s *scanner) visitCatch(cur *scope.Scope, n astview.Node) error {
	if err := s.checkCancelled(); err != nil {
		return err
	}
	catchScope := scope.NewScope(cur)
	param := n.ChildByField("parameter")
	if param == nil {
		param = childOfKind(n, astview.KindCatchFormalParameter)
	}
	if param != nil {
		if typ := param.ChildByField("type"); typ != nil {
			if err := s.visit(catchScope, typ); err != nil {
				return err
			}
		} else {
			// catch_type (and any modifiers) are unnamed-field children;
			// the bare identifier child is the parameter name itself.
			for _, c := range param.NamedChildren() {
				if c.Kind() == astview.KindIdentifier {
					continue
				}
				if err := s.visit(catchScope, c); err != nil {
					return err
				}
			}
		}
		if name := param.ChildByField("name"); name != nil {
			catchScope.Declare(scope.Identifier(name.Content()), scope.NewVariableEntity(scope.Identifier(name.Content()), scope.Private, false))
		}
	}
	if err := s.visit(catchScope, n.ChildByField("body")); err != nil {
		return err
	}
	catchScope.BubbleTo(cur)
	return nil
}

// visitSwitch implements "a switch body is a single scope" (spec
// §4.1): every case group's locals are declared into one shared scope.
func (s *scanner) visitSwitch(cur *scope.Scope, n astview.Node) error {
	if err := s.checkCancelled(); err != nil {
		return err
	}
	switchScope := scope.NewScope(cur)

	if cond := n.ChildByField("condition"); cond != nil {
		if err := s.visit(switchScope, cond); err != nil {
			return err
		}
	}
	// The case groups (switch_block_statement_group / switch_rule) are
	// not direct children of the switch node -- they live inside its
	// "body" (switch_block) child. Recursing through visit's default
	// case walks past that intermediate node into the groups themselves.
	if err := s.visit(switchScope, n.ChildByField("body")); err != nil {
		return err
	}

	switchScope.BubbleTo(cur)
	return nil
}

func childOfKind(n astview.Node, k astview.Kind) astview.Node {
	for _, c := range n.NamedChildren() {
		if c.Kind() == k {
			return c
		}
	}
	return nil
}

func (s *scanner) visitMethodOrConstructor(cur *scope.Scope, n astview.Node) error {
	if err := s.checkCancelled(); err != nil {
		return err
	}
	methodScope := scope.NewScope(cur)

	declareTypeParameters(methodScope, n.ChildByField("type_parameters"))
	if err := s.visitFormalParameters(methodScope, n.ChildByField("parameters")); err != nil {
		return err
	}
	if err := s.visit(methodScope, n.ChildByField("type")); err != nil {
		return err
	}

	if body := n.ChildByField("body"); body != nil {
		if err := s.visitChildren(methodScope, body); err != nil {
			return err
		}
	}

	methodScope.BubbleTo(cur)
	return nil
}

// visitTypeDecl opens a class scope, pre-declares every sibling member,
// scans the body, and on close either bubbles residuals to the parent
// scope or seals them into an OrphanClass (spec §4.1's "Class bodies
// and orphan emission"). A declared superclass always yields an orphan:
// whether that superclass happens to be known within the same file is
// immaterial to the scanner's own output, since the extender — not the
// scanner — is responsible for consulting a hierarchy (which may itself
// be built purely from in-file classes) to shrink the residual set.
func (s *scanner) visitTypeDecl(cur *scope.Scope, n astview.Node) error {
	if err := s.checkCancelled(); err != nil {
		return err
	}

	nameNode := n.ChildByField("name")
	if nameNode == nil {
		return &InternalInvariantViolation{NodeKind: n.Type(), Path: "type declaration with no name field"}
	}
	name := scope.Identifier(nameNode.Content())

	entity, ok := cur.LocalLookup(name)
	classEntity, ok2 := entity.(*scope.ClassEntity)
	if !ok || !ok2 {
		// Nested class encountered without having been pre-declared by its
		// enclosing body (should not happen given predeclareMembers runs
		// first) — declare it now defensively.
		predeclareType(cur, n)
		entity, _ = cur.LocalLookup(name)
		classEntity = entity.(*scope.ClassEntity)
	}

	classScope := scope.NewScope(cur)
	classEntity.SetScope(classScope)

	declareTypeParameters(classScope, n.ChildByField("type_parameters"))

	body := n.ChildByField("body")
	if body != nil {
		predeclareMembers(classScope, classEntity, body)
	}

	s.classPath = append(s.classPath, string(name))
	if body != nil {
		for _, member := range body.NamedChildren() {
			if err := s.visit(classScope, member); err != nil {
				s.classPath = s.classPath[:len(s.classPath)-1]
				return err
			}
		}
	}
	path := append([]string(nil), s.classPath...)
	s.classPath = s.classPath[:len(s.classPath)-1]

	if classEntity.Superclass() != nil {
		owner := selFromPath(path)
		s.orphans = append(s.orphans, hierarchy.NewOrphanClass(owner, classScope.Unresolved(), classEntity.Superclass()))
		return nil
	}

	classScope.BubbleTo(cur)
	return nil
}

// predeclareMembers binds every method, constructor, field, and nested
// type declared directly in body into classScope, and records the
// non-private ones on classEntity's member set (spec §4.1, §3's Member
// definition).
func predeclareMembers(classScope *scope.Scope, classEntity *scope.ClassEntity, body astview.Node) {
	for _, member := range body.NamedChildren() {
		visibility, static := visibilityAndStatic(member)
		nonPrivate := visibility != scope.Private

		switch member.Kind() {
		case astview.KindMethodDecl, astview.KindConstructorDecl:
			for _, n := range memberNames(member) {
				classScope.Declare(scope.Identifier(n), scope.NewMethodEntity(scope.Identifier(n), visibility, static))
				if nonPrivate {
					classEntity.AddMember(scope.Identifier(n))
				}
			}
		case astview.KindFieldDecl:
			for _, n := range memberNames(member) {
				classScope.Declare(scope.Identifier(n), scope.NewVariableEntity(scope.Identifier(n), visibility, static))
				if nonPrivate {
					classEntity.AddMember(scope.Identifier(n))
				}
			}
		case astview.KindClassDecl, astview.KindInterfaceDecl, astview.KindEnumDecl,
			astview.KindAnnotationDecl, astview.KindRecordDecl:
			predeclareType(classScope, member)
			for _, n := range memberNames(member) {
				if nonPrivate {
					classEntity.AddMember(scope.Identifier(n))
				}
			}
		}
	}
}
