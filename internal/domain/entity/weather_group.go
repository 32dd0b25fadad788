package entity

import "fmt"

// WeatherGroup is a coarse bucket of OpenWeatherMap condition codes used to pick a display icon.
type WeatherGroup int

const (
	GroupThunder WeatherGroup = iota
	GroupDrizzle
	GroupRain
	GroupSnow
	GroupAtmosphere
	GroupClear
	GroupClouds
)

// conditionRange is an inclusive range of condition codes
type conditionRange struct {
	from, to int
	group    WeatherGroup
}

// conditionRanges are disjoint and checked in order. Codes outside all of them are GroupClouds.
var conditionRanges = []conditionRange{
	{200, 232, GroupThunder},
	{300, 321, GroupDrizzle},
	{500, 531, GroupRain},
	{600, 622, GroupSnow},
	{701, 781, GroupAtmosphere},
	{800, 800, GroupClear},
}

// ClassifyCondition maps an OpenWeatherMap condition code to its group. It never fails.
func ClassifyCondition(code int) WeatherGroup {
	for _, r := range conditionRanges {
		if code >= r.from && code <= r.to {
			return r.group
		}
	}
	return GroupClouds
}

var groupNames = map[WeatherGroup]string{
	GroupThunder:    "thunder",
	GroupDrizzle:    "drizzle",
	GroupRain:       "rain",
	GroupSnow:       "snow",
	GroupAtmosphere: "atmosphere",
	GroupClear:      "clear",
	GroupClouds:     "clouds",
}

var groupIcons = map[WeatherGroup]string{
	GroupThunder:    "ic_thunder",
	GroupDrizzle:    "ic_rain",
	GroupRain:       "ic_rain",
	GroupSnow:       "ic_snow",
	GroupAtmosphere: "ic_fog",
	GroupClear:      "ic_sun",
	GroupClouds:     "ic_sun_cloudy",
}

func (g WeatherGroup) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("WeatherGroup(%d)", int(g))
}

// Icon returns the asset name displayed for the group.
func (g WeatherGroup) Icon() string {
	return groupIcons[g]
}

func (g WeatherGroup) MarshalText() ([]byte, error) {
	name, ok := groupNames[g]
	if !ok {
		return nil, fmt.Errorf("unknown weather group %d", int(g))
	}
	return []byte(name), nil
}

func (g *WeatherGroup) UnmarshalText(text []byte) error {
	for group, name := range groupNames {
		if name == string(text) {
			*g = group
			return nil
		}
	}
	return fmt.Errorf("unknown weather group %q", string(text))
}
