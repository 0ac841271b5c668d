package study_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vets2tech/onboard/internal/errors"
	"github.com/vets2tech/onboard/internal/study"
)

func TestService_Describe(t *testing.T) {
	t.Parallel()

	s := study.NewService(study.Config{Catalog: study.DefaultCatalog()})

	r, err := s.Describe("CompTIA Security+")
	require.NoError(t, err)
	assert.Equal(t, "CompTIA Security+", r.Title)
	assert.NotEmpty(t, r.Description)
	assert.NotEmpty(t, r.URL)

	r, err = s.Describe("No Such Course")
	assert.Nil(t, r)
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestService_List(t *testing.T) {
	t.Parallel()

	s := study.NewService(study.Config{Catalog: study.DefaultCatalog()})

	resources := s.List()
	assert.Len(t, resources, len(study.DefaultCatalog()))
	assert.True(t, sort.SliceIsSorted(resources, func(i, j int) bool {
		return resources[i].Title < resources[j].Title
	}), "resources should be sorted by title")
}
