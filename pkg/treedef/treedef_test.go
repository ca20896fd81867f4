package treedef

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grindlemire/widgeo/pkg/geometry"
)

const splitDef = `
axes: 2
name: root
sequence: 0
sizes:
  - demand: exact
    extent: 10
    justify: toLowest
  - demand: exact
    extent: 6
    inner: 0.01
    justify: centre
children:
  - name: sidebar
    sizes:
      - demand: exact
        extent: 3
        outer: {value: 0.1, unit: world}
      - demand: exact
        extent: 4
  - name: main
    sequence: 1
    sizes:
      - demand: expandToFit
      - demand: shrinkToFit
        inner: {value: 0.2, unit: world}
    children:
      - name: status
        sizes:
          - demand: exact
            extent: 2
          - demand: exact
            extent: 1
`

func TestLoad(t *testing.T) {
	t.Parallel()

	d, err := Load(strings.NewReader(splitDef))
	require.NoError(t, err)

	require.Equal(t, 2, d.Axes)
	require.Equal(t, "root", d.Root.Name)
	require.NotNil(t, d.Root.Sequence)
	require.Equal(t, 0, *d.Root.Sequence)
	require.Len(t, d.Root.Children, 2)

	sidebar := d.Root.Children[0]
	require.Nil(t, sidebar.Sequence)
	require.Equal(t, BufferDef{Value: 0.1, Unit: "world"}, sidebar.Sizes[0].Outer)
	require.Equal(t, BufferDef{Value: 0.01}, d.Root.Sizes[1].Inner)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"missing axes": `
name: root
sequence: 0
sizes: [{demand: exact, extent: 1}]
`,
		"missing root name": `
axes: 1
sequence: 0
sizes: [{demand: exact, extent: 1}]
`,
		"root without sequence": `
axes: 1
name: root
sizes: [{demand: exact, extent: 1}]
`,
		"unknown field": `
axes: 1
name: root
sequence: 0
sizes: [{demand: exact, extent: 1, weight: 3}]
`,
	}

	for name, def := range tests {
		def := def
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(strings.NewReader(def))
			require.Error(t, err)
		})
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	d, err := Load(strings.NewReader(splitDef))
	require.NoError(t, err)

	arena, err := d.Build()
	require.NoError(t, err)
	require.Equal(t, 4, arena.Len())

	_, err = arena.Solve()
	require.NoError(t, err)

	// main expands to the space the sidebar leaves. The sidebar's outer
	// buffer is charged in full but its outward-facing half is credited
	// back at the end of the run.
	children := arena.ChildrenOf(0)
	require.Len(t, children, 2)
	main := children[1]
	require.Equal(t, "main", arena.Name(main))

	r, ok := arena.Range(main, 0)
	require.True(t, ok)
	require.InDelta(t, 6.95, r.Hi-r.Lo, 1e-9)

	// main shrinks onto its status child plus inner buffers on axis 1.
	r, ok = arena.Range(main, 1)
	require.True(t, ok)
	require.InDelta(t, 1.0+2*0.2, r.Hi-r.Lo, 1e-9)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		def  string
		want string
	}{
		"leaf with children": {
			def: `
axes: 1
name: root
sequence: 0
sizes: [{demand: exact, extent: 1}]
children:
  - name: a
    sizes: [{demand: exact, extent: 1}]
    children:
      - name: b
        sizes: [{demand: exact, extent: 1}]
`,
			want: "no sequence axis",
		},
		"unknown demand": {
			def: `
axes: 1
name: root
sequence: 0
sizes: [{demand: grow}]
`,
			want: "not recognized",
		},
		"unknown buffer unit": {
			def: `
axes: 1
name: root
sequence: 0
sizes: [{demand: exact, extent: 1, outer: {value: 1, unit: pixels}}]
`,
			want: "not recognized",
		},
		"size count mismatch": {
			def: `
axes: 2
name: root
sequence: 0
sizes: [{demand: exact, extent: 1}]
`,
			want: "2 axes",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			d, err := Load(strings.NewReader(tt.def))
			require.NoError(t, err)

			_, err = d.Build()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuild_SizeValidationSurfacesKind(t *testing.T) {
	t.Parallel()

	d, err := Load(strings.NewReader(`
axes: 1
name: root
sequence: 0
sizes: [{demand: exact}]
`))
	require.NoError(t, err)

	_, err = d.Build()
	require.ErrorIs(t, err, geometry.ErrMissingExtent)
}

func TestExampleDefinitions(t *testing.T) {
	t.Parallel()

	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			t.Parallel()
			d, err := LoadFile(path)
			require.NoError(t, err)

			arena, err := d.Build()
			require.NoError(t, err)

			_, err = arena.Solve()
			require.NoError(t, err)
		})
	}
}
