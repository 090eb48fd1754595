package tenant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trasealla/crm-api/pkg/tenant"
)

func TestParseFeatureSet(t *testing.T) {
	t.Parallel()

	t.Run("json object", func(t *testing.T) {
		t.Parallel()

		fs, err := tenant.ParseFeatureSet([]byte(`{"reporting": true, "export": false}`))
		require.NoError(t, err)
		assert.True(t, fs.Enabled("reporting"))
		assert.False(t, fs.Enabled("export"))
	})

	t.Run("double-encoded string", func(t *testing.T) {
		t.Parallel()

		fs, err := tenant.ParseFeatureSet([]byte(`"{\"all\": true}"`))
		require.NoError(t, err)
		assert.True(t, fs.Enabled("anything"))
	})

	t.Run("empty and null input", func(t *testing.T) {
		t.Parallel()

		for _, raw := range [][]byte{nil, []byte(""), []byte("  "), []byte("null")} {
			fs, err := tenant.ParseFeatureSet(raw)
			require.NoError(t, err)
			assert.Nil(t, fs)
		}
	})

	t.Run("loose legacy values", func(t *testing.T) {
		t.Parallel()

		fs, err := tenant.ParseFeatureSet([]byte(`{"a": 1, "b": 0, "c": "yes", "d": "", "e": "false", "f": "0"}`))
		require.NoError(t, err)
		assert.True(t, fs.Enabled("a"))
		assert.False(t, fs.Enabled("b"))
		assert.True(t, fs.Enabled("c"))
		assert.False(t, fs.Enabled("d"))
		assert.False(t, fs.Enabled("e"))
		assert.False(t, fs.Enabled("f"))
	})

	t.Run("invalid payload errors", func(t *testing.T) {
		t.Parallel()

		_, err := tenant.ParseFeatureSet([]byte(`[1,2,3]`))
		assert.ErrorIs(t, err, tenant.ErrInvalidFeatureSet)
	})
}

func TestFeatureSetEnabled(t *testing.T) {
	t.Parallel()

	t.Run("nil set grants nothing", func(t *testing.T) {
		t.Parallel()

		var fs tenant.FeatureSet
		assert.False(t, fs.Enabled("reporting"))
	})

	t.Run("wildcard covers absent keys", func(t *testing.T) {
		t.Parallel()

		fs := tenant.FeatureSet{"all": true}
		assert.True(t, fs.Enabled("reporting"))
	})

	t.Run("explicit key wins without wildcard", func(t *testing.T) {
		t.Parallel()

		fs := tenant.FeatureSet{"reporting": true}
		assert.True(t, fs.Enabled("reporting"))
		assert.False(t, fs.Enabled("export"))
	})
}
