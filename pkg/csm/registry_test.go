package csm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftomassetti/javaparser/pkg/csm"
	"github.com/ftomassetti/javaparser/pkg/jast"
)

func TestDefaultRegistry_CoversEveryKind(t *testing.T) {
	t.Parallel()

	require.NoError(t, csm.DefaultRegistry.Validate())
	assert.Len(t, csm.DefaultRegistry.Kinds(), len(jast.Kinds()))
}

func TestRegistry_MissingKind(t *testing.T) {
	t.Parallel()

	reg := csm.NewRegistry()
	_, err := reg.Lookup(jast.NodeClassOrInterfaceDeclaration)
	require.Error(t, err)
	assert.ErrorIs(t, err, csm.ErrConfiguration)

	var cfgErr *csm.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, jast.NodeClassOrInterfaceDeclaration, cfgErr.Kind)

	assert.ErrorIs(t, reg.Validate(), csm.ErrConfiguration)
}

func TestRegistry_ValidateRejectsBadProperty(t *testing.T) {
	t.Parallel()

	reg := csm.NewRegistry()
	csm.RegisterJava(reg)
	reg.Register(jast.NodeReturnStmt, csm.Seq(csm.Keyword("return"), csm.Child(jast.PropBody)))

	err := reg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ReturnStmt")
}
