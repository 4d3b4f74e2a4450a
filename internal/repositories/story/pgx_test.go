package story

import (
	"testing"

	"github.com/orgball2608/event-poster-api/internal/domain"
	apperrors "github.com/orgball2608/event-poster-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestBuildUpdateEmptyPatch(t *testing.T) {
	_, _, err := buildUpdate(1, domain.StoryPatch{})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestBuildUpdateSingleField(t *testing.T) {
	query, args, err := buildUpdate(7, domain.StoryPatch{OrderNum: intPtr(5)})
	require.NoError(t, err)

	assert.Equal(t, "UPDATE stories SET order_num = $1 WHERE id = $2 RETURNING "+returningColumns, query)
	assert.Equal(t, []interface{}{5, 7}, args)
}

func TestBuildUpdateOmitsAbsentFields(t *testing.T) {
	query, _, err := buildUpdate(1, domain.StoryPatch{Caption: strPtr("new")})
	require.NoError(t, err)

	assert.Contains(t, query, "caption = $1")
	assert.NotContains(t, query, "order_num")
	assert.NotContains(t, query, "is_active = ")
}

func TestBuildUpdateAllFields(t *testing.T) {
	patch := domain.StoryPatch{
		Caption:  strPtr("new"),
		OrderNum: intPtr(2),
		IsActive: boolPtr(false),
	}

	query, args, err := buildUpdate(3, patch)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE stories SET caption = $1, order_num = $2, is_active = $3 WHERE id = $4 RETURNING "+returningColumns, query)
	assert.Equal(t, []interface{}{"new", 2, false, 3}, args)
}
