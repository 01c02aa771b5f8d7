package typeconfig_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/confkit/typeconfig"
)

func TestJSONSchema(t *testing.T) {
	t.Parallel()

	tc := typeconfig.New()
	tc.AddOption("int", "Money", "The amount of money you can use.", typeconfig.WithDefault("50"))
	tc.AddOption("letters", "Shop", "Where you are going to shop.",
		typeconfig.WithImportantHelp("Letters only\n(a to z)"))
	tc.AddOption("list", "Buy", "What to buy.", typeconfig.WithCanBeEmpty(true))

	schema := tc.JSONSchema()
	assert.Equal(t, []string{"Money", "Shop", "Buy"}, schema.PropertyOrder)
	assert.Equal(t, []string{"Shop"}, schema.Required)

	b, err := json.Marshal(schema)
	require.NoError(t, err)

	var got map[string]any

	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, "http://json-schema.org/draft-07/schema#", got["$schema"])
	assert.Equal(t, "object", got["type"])
	assert.Equal(t, false, got["additionalProperties"])

	props, ok := got["properties"].(map[string]any)
	require.True(t, ok)

	money, ok := props["Money"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "50", money["default"])
	assert.Equal(t, "int", money["x-type"])
	assert.Equal(t, "The amount of money you can use.", money["description"])

	shop, ok := props["Shop"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Letters only (a to z)\n\nWhere you are going to shop.", shop["description"])
	assert.NotContains(t, shop, "default")
}
