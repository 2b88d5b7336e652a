package integrations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogContents(t *testing.T) {
	list := NewCatalog(0).List()
	require.Len(t, list, 5)

	ids := make([]string, len(list))
	for i, e := range list {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"sungrow", "huawei", "deye", "apsystems", "phb"}, ids)

	assert.Equal(t, Disconnected, list[0].Status)
	assert.Equal(t, Connected, list[1].Status)
	assert.Equal(t, StatusError, list[2].Status)

	// Sungrow needs the extra app key field on top of user/password.
	require.Len(t, list[0].Fields, 3)
	assert.Equal(t, "appkey", list[0].Fields[2].Name)
	require.Len(t, list[4].Fields, 2)
	assert.Equal(t, "apikey", list[4].Fields[0].Name)
}

func TestConnectAlwaysSucceeds(t *testing.T) {
	cat := NewCatalog(0)

	entry, err := cat.Connect("sungrow", map[string]string{"username": "x"})
	require.NoError(t, err)
	assert.Equal(t, Connected, entry.Status)

	// Credentials are not validated; nil is fine.
	entry, err = cat.Connect("deye", nil)
	require.NoError(t, err)
	assert.Equal(t, Connected, entry.Status)
}

func TestConnectWaitsConfiguredDelay(t *testing.T) {
	cat := NewCatalog(30 * time.Millisecond)

	start := time.Now()
	_, err := cat.Connect("apsystems", nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestDisconnect(t *testing.T) {
	cat := NewCatalog(0)

	entry, err := cat.Disconnect("huawei")
	require.NoError(t, err)
	assert.Equal(t, Disconnected, entry.Status)
}

func TestUnknownIntegration(t *testing.T) {
	cat := NewCatalog(0)

	_, err := cat.Connect("nope", nil)
	assert.ErrorIs(t, err, ErrUnknownIntegration)

	_, err = cat.Disconnect("nope")
	assert.ErrorIs(t, err, ErrUnknownIntegration)
}

func TestStateIsSessionScoped(t *testing.T) {
	cat := NewCatalog(0)
	_, err := cat.Connect("sungrow", nil)
	require.NoError(t, err)

	fresh := NewCatalog(0)
	assert.Equal(t, Disconnected, fresh.List()[0].Status,
		"a new catalog must restore the initial statuses")
}
