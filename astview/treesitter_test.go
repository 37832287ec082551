package astview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePackageAndImports(t *testing.T) {
	src := `package com.acme.widgets;

import java.util.List;
import static java.util.Collections.emptyList;
import com.acme.base.*;

class Widget {
}
`
	p := NewParser()
	cu, diags := p.Parse(context.Background(), []byte(src))
	require.Empty(t, diags)
	require.Equal(t, []string{"com", "acme", "widgets"}, cu.PackageName)

	require.Len(t, cu.Imports, 3)
	require.Equal(t, []string{"java", "util", "List"}, cu.Imports[0].Segments)
	require.False(t, cu.Imports[0].Static)
	require.False(t, cu.Imports[0].Wildcard)

	require.True(t, cu.Imports[1].Static)
	require.Equal(t, []string{"java", "util", "Collections", "emptyList"}, cu.Imports[1].Segments)

	require.True(t, cu.Imports[2].Wildcard)
	require.Equal(t, []string{"com", "acme", "base"}, cu.Imports[2].Segments)

	require.Len(t, cu.Root.NamedChildren(), 1)
	require.Equal(t, KindClassDecl, cu.Root.NamedChildren()[0].Kind())
}

func TestParseRecoversFromSyntaxError(t *testing.T) {
	src := `class Widget {
    void broken( {
}
`
	p := NewParser()
	_, diags := p.Parse(context.Background(), []byte(src))
	require.NotEmpty(t, diags)
}

func TestKindClassificationHelpers(t *testing.T) {
	require.True(t, KindClassDecl.IsDefinition())
	require.False(t, KindBlock.IsDefinition())
	require.True(t, KindForStatement.IsBlockLike())
	require.False(t, KindClassDecl.IsBlockLike())
}
