package scanner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glazari/javaimports/astview"
	"github.com/glazari/javaimports/hierarchy"
	"github.com/glazari/javaimports/scope"
	"github.com/glazari/javaimports/selector"
)

func scan(t *testing.T, src string) *ScanResult {
	t.Helper()
	p := astview.NewParser()
	cu, diags := p.Parse(context.Background(), []byte(src))
	result, err := Scan(cu, diags, nil)
	require.NoError(t, err)
	return result
}

func requireUnresolved(t *testing.T, result *ScanResult, names ...string) {
	t.Helper()
	got := result.Unresolved.Values()
	require.Len(t, got, len(names), "unresolved set %v", got)
	for _, n := range names {
		require.True(t, result.Unresolved.Contains(n), "expected %q unresolved, got %v", n, got)
	}
}

// Scenario 1: two methods referencing each other's locals.
func TestScenario1_SiblingMethodForwardReference(t *testing.T) {
	result := scan(t, `class T { void g(){ int c=f(b); } int f(int a){ int b=2; return a+b; } }`)
	requireUnresolved(t, result, "b")
}

// Scenario 2: loop-scoped bindings escape only their own loop.
func TestScenario2_LoopScopedBindingsDoNotEscape(t *testing.T) {
	result := scan(t, `class T { void f(){
		for(int i=0;i<10;i++){ int b=2; staticFunction(i+b);}
		int v=i+b;
		boolean[] c={true,false};
		for(boolean d:c){ boolean e=d;}
		boolean f=e||d;
	} }`)
	requireUnresolved(t, result, "staticFunction", "i", "b", "e", "d")
}

// Scenario 3: if/else blocks each declare their own locals, invisible
// once the statement ends, even to each other.
func TestScenario3_IfElseBranchLocalsDoNotEscape(t *testing.T) {
	result := scan(t, `class T { void f(){
		if (true) { int a=1; int c=2; } else { int b=3; }
		boolean ok = (a>0) && (b>0) && (c>0);
	} }`)
	requireUnresolved(t, result, "a", "b", "c")
}

// Scenario 4: try, each catch clause, and finally are each sealed off
// from the rest of the method -- a catch parameter is no exception.
func TestScenario4_TryCatchFinallyLocalsAreSealed(t *testing.T) {
	result := scan(t, `class T { void f(){
		try { int a=1; }
		catch (SomeException e) { int b=2; }
		catch (Exception ex) { int c=3; }
		finally { int d=4; }
		boolean ok = (a>0) && (b>0) && (c>0) && (e>0);
	} }`)
	requireUnresolved(t, result, "SomeException", "Exception", "a", "b", "c", "e")
}

// Scenario 5: a try-with-resources variable is visible inside the try
// block but, like any other try-scoped local, invisible after it.
func TestScenario5_TryWithResourcesResourceVisibleOnlyInsideTry(t *testing.T) {
	result := scan(t, `class T { void f(){
		try (Exception r = null) { int a=1; }
		catch (SomeException e) { int b=2; }
		catch (Exception ex) { int c=3; }
		finally { int d=4; }
		boolean ok = (a>0) && (b>0) && (c>0) && (e>0) && (r>0);
	} }`)
	requireUnresolved(t, result, "SomeException", "Exception", "a", "b", "c", "e", "r")
}

// Scenario 6: an in-file inheritance chain produces orphan classes whose
// raw (pre-extension) residuals are exactly the body methods' own
// unresolved references, and extending them against an in-file
// hierarchy does not add anything further.
func TestScenario6_InheritanceChainOrphanAndExtension(t *testing.T) {
	result := scan(t, `
		class Parent { int g(){return 1;} int h(){return 2;} int a(){return 3;} }
		class Child extends Parent {
			int c(){return 4;}
			int useInherited(){ return g()+h()+a()+b()+n(); }
		}
		class OtherChild extends Child {
			int useMore(){ return c()+useInherited()+n(); }
		}
	`)

	require.Len(t, result.Orphans, 2)

	// The driver builds a hierarchy from every class parsed in the file
	// before extending; here that hierarchy is just the package scope's
	// own class bindings.
	h := hierarchy.New()
	pkg := result.PackageScope
	for _, name := range []string{"Parent", "Child", "OtherChild"} {
		entity, ok := pkg.LocalLookup(scope.Identifier(name))
		require.True(t, ok)
		h.Add(selector.New(name), entity.(*scope.ClassEntity))
	}

	for _, orphan := range result.Orphans {
		extended := hierarchy.Extend(orphan, h)
		require.True(t, extended.IsFullyExtended())
		remaining := extended.NotYetResolved()
		require.False(t, remaining.Contains("g"))
		require.False(t, remaining.Contains("h"))
		require.False(t, remaining.Contains("a"))
		require.False(t, remaining.Contains("c"))
	}
}

// Scenario 7: a lambda parameter shadows an outer name only inside the
// lambda body.
func TestScenario7_LambdaParameterShadowsOnlyInsideBody(t *testing.T) {
	result := scan(t, `class T { void f(){
		int a=1;
		BiFunction<Integer,Integer,Integer> fn=(b,c)->a+b+c;
		int d=fn.apply(2,3)+b;
	} }`)
	requireUnresolved(t, result, "b", "Integer", "BiFunction")
}

// Scenario 8: generic parameters are visible in their own declaration.
func TestScenario8_GenericParametersVisibleInOwnDeclaration(t *testing.T) {
	result := scan(t, `class T<R> { static <T> T f(T t){ R var=null; return t; } }`)
	requireUnresolved(t, result)
}
