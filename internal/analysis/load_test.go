package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/schemald/internal/ir"
)

func TestLoad_IgnoresStaleGeneratedFile(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go command")
	}
	pkgs, err := Load(context.Background(), LoadConfig{Dir: "testdata/stale", Workers: 2}, ".")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	p := pkgs[0]
	require.Empty(t, p.Diags)
	assert.Equal(t, "stale", p.Name)
	require.Len(t, p.Decls, 1)
	d := p.Decls[0]
	assert.Equal(t, "Guide", d.GoName)
	assert.Equal(t, "HowTo", d.Vocabulary)
	require.Len(t, d.Properties, 2)
	assert.Equal(t, ir.KindDuration, d.Properties[1].Type.Kind)
	assert.Equal(t, "totalTime", d.Properties[1].Key)
}
