package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	for _, bad := range []string{"25:00", "9:30:00", "abc", "12:60", ""} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", bad)
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    TimeString
	}{
		{0, "00:00"},
		{540, "09:00"},
		{750, "12:30"},
		{1439, "23:59"},
		{1440, "24:00"},
	}
	for _, tc := range cases {
		ts, err := NewTimeStringFromMinutes(tc.minutes)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ts)
	}

	_, err := NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewTimeStringFromMinutes(1441)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("10:30").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:00"), ts)

	ts, err = TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), ts)

	_, err = TimeString("23:30").AddMinutes(31)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15:00")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 1, 14, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
