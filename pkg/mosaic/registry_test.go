package mosaic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartolab/mosaic/internal/projection"
)

func TestDefaultRegistryEntries(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []string{
		"azimuthal-equal-area",
		"azimuthal-equidistant",
		"conic-conformal",
		"conic-equal-area",
		"conic-equidistant",
		"equirectangular",
		"mercator",
		"natural-earth",
		"orthographic",
		"stereographic",
		"transverse-mercator",
	}, r.Registered())

	proj, family, err := r.Create("conic-conformal")
	require.NoError(t, err)
	assert.Equal(t, FamilyConic, family)
	assert.True(t, proj.IsConic())

	// Orthographic ships hemisphere clipping.
	proj, family, err = r.Create("orthographic")
	require.NoError(t, err)
	assert.Equal(t, FamilyAzimuthal, family)
	assert.Equal(t, 90.0, proj.ClipAngle())
}

func TestRegistryCreateReturnsFreshInstances(t *testing.T) {
	r := DefaultRegistry()

	a, _, err := r.Create("mercator")
	require.NoError(t, err)
	b, _, err := r.Create("mercator")
	require.NoError(t, err)

	a.SetScale(9999)
	assert.NotEqual(t, 9999.0, b.Scale(), "instances must not share state")
}

func TestRegistryUnknownID(t *testing.T) {
	r := DefaultRegistry()

	_, _, err := r.Create("bonne")
	var notRegistered *ErrProjectionNotRegistered
	require.ErrorAs(t, err, &notRegistered)
	assert.Equal(t, "bonne", notRegistered.ID)
	assert.NotEmpty(t, notRegistered.Registered)
}

func TestRegistryRegisterAndUnregister(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.IsRegistered("mercator"))

	r.Register("mercator", FamilyCylindrical, func() *Projection {
		return projection.New(projection.Mercator{})
	})
	assert.True(t, r.IsRegistered("mercator"))

	r.Unregister("mercator")
	assert.False(t, r.IsRegistered("mercator"))
	r.Unregister("mercator") // unknown ids are ignored
}
