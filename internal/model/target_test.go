package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"com.bradleytenuta/deauth/internal/targets"
)

func TestTargetEntryRoundTrip(t *testing.T) {
	from, err := targets.ParseMAC("aa:bb:cc:dd:ee:ff")
	require.NoError(t, err)
	to, err := targets.ParseMAC("ff:ff:ff:ff:ff:ff")
	require.NoError(t, err)

	entry := NewTargetEntry(targets.NewTarget(from, to, 6))
	assert.Equal(t, TargetEntry{From: "aa:bb:cc:dd:ee:ff", To: "ff:ff:ff:ff:ff:ff", Channel: 6}, entry)

	gotFrom, gotTo, err := entry.Addresses()
	require.NoError(t, err)
	assert.Equal(t, from, gotFrom)
	assert.Equal(t, to, gotTo)
}

func TestTargetEntryInvalidAddress(t *testing.T) {
	_, _, err := TargetEntry{From: "zz", To: "ff:ff:ff:ff:ff:ff"}.Addresses()
	assert.ErrorContains(t, err, "from address")

	_, _, err = TargetEntry{From: "ff:ff:ff:ff:ff:ff", To: "01:02"}.Addresses()
	assert.ErrorContains(t, err, "to address")
}
