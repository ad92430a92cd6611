package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/dunerides/internal/domain"
)

func TestNew_Valid(t *testing.T) {
	c, err := New(
		[]Vehicle{NewVehicle("1", "Desert Explorer Quad", "450cc", "Sport", "/img/1.jpg")},
		[]Tour{NewTour("sunset", "Sunset Safari", "Golden hour", "Easy", "/img/s.jpg", "2 hours", "$99")},
		nil,
	)
	require.NoError(t, err)

	assert.Len(t, c.Vehicles(), 1)
	assert.Len(t, c.Tours(), 1)
	assert.Empty(t, c.Posts())
	assert.False(t, c.IsEmpty())
}

func TestNew_AccessorsReturnCopies(t *testing.T) {
	c, err := New([]Vehicle{NewVehicle("1", "A", "", "", "")}, nil, nil)
	require.NoError(t, err)

	vs := c.Vehicles()
	vs[0] = NewVehicle("x", "mutated", "", "", "")

	assert.Equal(t, "1", c.Vehicles()[0].ID())
}

func TestNew_InputSliceIsCopied(t *testing.T) {
	in := []Tour{NewTour("a", "A", "", "", "", "", "")}
	c, err := New(nil, in, nil)
	require.NoError(t, err)

	in[0] = NewTour("b", "B", "", "", "", "", "")
	assert.Equal(t, "a", c.Tours()[0].ID())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		vehicles []Vehicle
		tours    []Tour
		posts    []Post
	}{
		{"vehicle without id", []Vehicle{NewVehicle("", "A", "", "", "")}, nil, nil},
		{"vehicle without name", []Vehicle{NewVehicle("1", "", "", "", "")}, nil, nil},
		{"duplicate vehicle", []Vehicle{NewVehicle("1", "A", "", "", ""), NewVehicle("1", "B", "", "", "")}, nil, nil},
		{"duplicate tour", nil, []Tour{NewTour("t", "A", "", "", "", "", ""), NewTour("t", "B", "", "", "", "", "")}, nil},
		{"post without title", nil, nil, []Post{NewPost("p", "", "", "", "")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.vehicles, tc.tours, tc.posts)
			require.ErrorIs(t, err, domain.ErrInvalidCatalog)
		})
	}
}

func TestValidate_SameIDAcrossKinds(t *testing.T) {
	_, err := New(
		[]Vehicle{NewVehicle("1", "Quad", "", "", "")},
		[]Tour{NewTour("1", "Tour", "", "", "", "", "")},
		[]Post{NewPost("1", "Post", "", "", "")},
	)
	require.NoError(t, err)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, Catalog{}.IsEmpty())

	c, err := New(nil, nil, []Post{NewPost("p", "Only a post", "", "", "")})
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}
