package classpath

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glazari/javaimports/hierarchy"
)

func TestToClassEntityBuildsSelectorAndMembers(t *testing.T) {
	record := ClassRecord{
		Selector:   "com.acme.widgets.Widget",
		Superclass: "com.acme.widgets.BaseWidget",
		Members:    []string{"render", "destroy"},
	}

	sel, entity := record.ToClassEntity()

	require.Equal(t, "com.acme.widgets.Widget", sel.String())
	require.True(t, entity.Members().Contains("render"))
	require.True(t, entity.Members().Contains("destroy"))
	require.Equal(t, "com.acme.widgets.BaseWidget", entity.Superclass().String())
}

func TestToClassEntityWithoutSuperclass(t *testing.T) {
	record := ClassRecord{Selector: "com.acme.widgets.Widget"}

	_, entity := record.ToClassEntity()

	require.Nil(t, entity.Superclass())
}

func TestPopulateRegistersEveryArtifactClass(t *testing.T) {
	idx := &Index{
		Artifacts: []Artifact{
			{
				Coordinate: "com.acme:widgets:1.0",
				Classes: []ClassRecord{
					{Selector: "com.acme.widgets.Widget"},
				},
			},
			{
				Coordinate: "com.acme:gizmos:2.0",
				Classes: []ClassRecord{
					{Selector: "com.acme.gizmos.Gizmo"},
				},
			},
		},
	}

	h := hierarchy.New()
	Populate(h, idx)

	require.Equal(t, 2, h.Size())

	sel, _ := ClassRecord{Selector: "com.acme.widgets.Widget"}.ToClassEntity()
	_, ok := h.Lookup(sel)
	require.True(t, ok)
}

func TestPopulateLastArtifactWins(t *testing.T) {
	idx := &Index{
		Artifacts: []Artifact{
			{
				Coordinate: "com.acme:widgets:1.0",
				Classes: []ClassRecord{
					{Selector: "com.acme.Widget", Members: []string{"first"}},
				},
			},
			{
				Coordinate: "com.acme:widgets:2.0",
				Classes: []ClassRecord{
					{Selector: "com.acme.Widget", Members: []string{"second"}},
				},
			},
		},
	}

	h := hierarchy.New()
	Populate(h, idx)

	sel, _ := ClassRecord{Selector: "com.acme.Widget"}.ToClassEntity()
	entity, ok := h.Lookup(sel)
	require.True(t, ok)
	require.True(t, entity.Members().Contains("second"))
	require.False(t, entity.Members().Contains("first"))
}
