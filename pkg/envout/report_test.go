package envout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// report wraps config the way the inspection tool does: as a JSON document
// string-encoded inside the top-level JSON object.
func report(t *testing.T, config string) []byte {
	res, err := json.Marshal(map[string]string{"Config": config})
	require.NoError(t, err)
	return res
}

func TestDecode(t *testing.T) {
	// Success
	config, err := Decode(report(t, `{"config":{"Env":["FOO=bar"],"WorkingDir":"/srv"}}`))
	require.NoError(t, err)
	env, err := config.Env()
	require.NoError(t, err)
	assert.Equal(t, []string{"FOO=bar"}, env)
	assert.Equal(t, "/srv", config.WorkingDir())

	// Extra top-level keys are ignored
	_, err = Decode([]byte(`{"Config": "{\"config\":{\"Env\":[]}}", "FromImageDigest": "sha256:0000000000000000000000000000000000000000000000000000000000000000"}`))
	require.NoError(t, err)

	// Failures, each naming the layer that failed
	for _, c := range []struct {
		input []byte
		layer string
	}{
		{[]byte("not JSON at all"), reportLayer},
		{[]byte(`{}`), reportLayer},                        // "Config" key absent
		{[]byte(`{"Config": null}`), reportLayer},          // "Config" key null
		{report(t, "not JSON either"), configLayer},        // inner document invalid
		{report(t, `{}`), configLayer},                     // "config" key absent
		{report(t, `{"config": null}`), configLayer},       // "config" key null
		{[]byte(`{"Config": 42}`), reportLayer},            // "Config" is not a string
	} {
		_, err := Decode(c.input)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr, "%s", c.input)
		assert.Equal(t, c.layer, decodeErr.Layer, "%s", c.input)
	}
}

func TestImageConfigEnv(t *testing.T) {
	// An explicitly empty Env is valid, and distinct from an absent one
	config, err := Decode(report(t, `{"config":{"Env":[]}}`))
	require.NoError(t, err)
	env, err := config.Env()
	require.NoError(t, err)
	assert.Empty(t, env)

	for _, c := range []string{
		`{"config":{}}`,            // "Env" key absent
		`{"config":{"Env":null}}`,  // "Env" key null, treated as absent
	} {
		config, err := Decode(report(t, c))
		require.NoError(t, err, c)
		_, err = config.Env()
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr, c)
		assert.Equal(t, configLayer, decodeErr.Layer, c)
	}

	// Order is preserved, duplicates are not collapsed
	config, err = Decode(report(t, `{"config":{"Env":["B=2","A=1","B=3"]}}`))
	require.NoError(t, err)
	env, err = config.Env()
	require.NoError(t, err)
	assert.Equal(t, []string{"B=2", "A=1", "B=3"}, env)
}

func TestImageConfigWorkingDir(t *testing.T) {
	// WorkingDir may be absent; that is the empty string, not an error
	config, err := Decode(report(t, `{"config":{"Env":[]}}`))
	require.NoError(t, err)
	assert.Equal(t, "", config.WorkingDir())
}
