package resume

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassificationJSON_OwnerID(t *testing.T) {
	anon, err := json.Marshal(Result{Classification: Classification{ID: uuid.New(), Category: "HR"}})
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(anon, &fields))
	assert.NotContains(t, fields, "ownerId", "anonymous result has no owner")
	assert.Equal(t, "HR", fields["category"])
	assert.Equal(t, false, fields["saved"])

	owner := uuid.New()
	owned, err := json.Marshal(Classification{ID: uuid.New(), OwnerID: owner})
	require.NoError(t, err)
	fields = nil
	require.NoError(t, json.Unmarshal(owned, &fields))
	assert.Equal(t, owner.String(), fields["ownerId"])
}
