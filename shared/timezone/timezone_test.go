package timezone_test

import (
	"docai/shared/timezone"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { _ = timezone.Init("") })

	t.Run("empty name keeps utc", func(t *testing.T) {
		require.NoError(t, timezone.Init(""))
		assert.Equal(t, time.UTC, timezone.Location())
	})

	t.Run("named location", func(t *testing.T) {
		require.NoError(t, timezone.Init("Asia/Kolkata"))
		assert.Equal(t, "Asia/Kolkata", timezone.Location().String())
		assert.Equal(t, "Asia/Kolkata", timezone.Now().Location().String())
	})

	t.Run("unknown name falls back to utc", func(t *testing.T) {
		err := timezone.Init("Mars/Olympus_Mons")

		assert.Error(t, err)
		assert.Equal(t, time.UTC, timezone.Location())
	})
}

func TestFormat(t *testing.T) {
	t.Cleanup(func() { _ = timezone.Init("") })

	require.NoError(t, timezone.Init("Asia/Kolkata"))

	instant := time.Date(2025, 6, 21, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-06-21T15:00:00+05:30", timezone.Format(instant, time.RFC3339))
	assert.True(t, timezone.ToAppTime(instant).Equal(instant))
}
