package hockeytech

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarsTolerateStringEncoding(t *testing.T) {
	var v struct {
		A Int   `json:"a"`
		B Int   `json:"b"`
		C Int   `json:"c"`
		D Float `json:"d"`
		E Bool  `json:"e"`
		F Bool  `json:"f"`
		G Int   `json:"g"`
	}
	raw := `{"a":"12","b":7,"c":"","d":"0.914","e":"1","f":false,"g":"null"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &v))

	assert.Equal(t, 12, v.A.V())
	assert.Equal(t, 7, v.B.V())
	assert.Equal(t, 0, v.C.V())
	assert.InDelta(t, 0.914, v.D.V(), 0.0001)
	assert.True(t, v.E.V())
	assert.False(t, v.F.V())
	assert.Equal(t, 0, v.G.V())
}

func TestIntPtrNilForZero(t *testing.T) {
	var zero, set Int
	require.NoError(t, json.Unmarshal([]byte(`""`), &zero))
	require.NoError(t, json.Unmarshal([]byte(`"31"`), &set))

	assert.Nil(t, zero.Ptr())
	require.NotNil(t, set.Ptr())
	assert.Equal(t, 31, *set.Ptr())
}

func TestSeasonStatListAcceptsObjectOrList(t *testing.T) {
	var fromList, fromObject SeasonStatList
	require.NoError(t, json.Unmarshal(
		[]byte(`[{"season_id":"5","goals":"9"},{"season_id":"4","goals":"3"}]`), &fromList))
	require.NoError(t, json.Unmarshal(
		[]byte(`{"season_id":"5","goals":"9"}`), &fromObject))

	require.Len(t, fromList, 2)
	assert.Equal(t, 4, fromList[1].SeasonID.V())
	require.Len(t, fromObject, 1)
	assert.Equal(t, 9, fromObject[0].Goals.V())
}

func TestPlayerSeasonStatsRowsDropsCareerTotals(t *testing.T) {
	stats := PlayerSeasonStats{
		Regular: SeasonStatList{
			{ShortName: "2024-25", Goals: 9},
			{ShortName: "Total", Goals: 12},
		},
		Playoff: SeasonStatList{
			{ShortName: "2025 Playoffs", Goals: 3},
		},
	}
	rows := stats.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-25", rows[0].ShortName)
	assert.Equal(t, "2025 Playoffs", rows[1].ShortName)
}
