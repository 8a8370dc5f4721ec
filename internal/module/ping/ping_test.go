package ping

import (
	"anvaya-club/test"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPing(t *testing.T) {
	env := test.NewEnv(t)
	r := test.NewEngine(env.App, &ModulePing{})

	w := test.Get(t, r, "/api/ping")
	test.NoError(t, w)
	body := test.Decode[map[string]string](t, w)
	assert.Equal(t, "pong", body["message"])
}
