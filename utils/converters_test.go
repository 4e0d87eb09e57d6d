package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeToSeconds(t *testing.T) {
	assert.Equal(t, 754, TimeToSeconds("12:34"))
	assert.Equal(t, 3723, TimeToSeconds("1:02:03"))
	assert.Equal(t, 0, TimeToSeconds(""))
	assert.Equal(t, 0, TimeToSeconds("garbage"))
	assert.Equal(t, 0, TimeToSeconds("12"))
}

func TestPeriodNumber(t *testing.T) {
	cases := map[string]int{
		"1":   1,
		"2nd": 2,
		"3rd": 3,
		"OT1": 4,
		"OT2": 5,
		"OT3": 6,
		"SO":  7,
		"":    0,
		"abc": 0,
	}
	for in, want := range cases {
		assert.Equal(t, want, PeriodNumber(in), "input %q", in)
	}
}

func TestSplitBirthplace(t *testing.T) {
	town, region := SplitBirthplace("Kleinburg, Ontario, Canada")
	assert.Equal(t, "Kleinburg", town)
	assert.Equal(t, "Ontario, Canada", region)

	town, region = SplitBirthplace("Stockholm")
	assert.Equal(t, "Stockholm", town)
	assert.Equal(t, "", region)

	town, region = SplitBirthplace("")
	assert.Equal(t, "", town)
	assert.Equal(t, "", region)
}

func TestTeamIDFromLogoURL(t *testing.T) {
	assert.Equal(t, 123, TeamIDFromLogoURL("https://assets.example.com/logos/123_5.png"))
	assert.Equal(t, 0, TeamIDFromLogoURL("https://assets.example.com/logos/banner.png"))
}
