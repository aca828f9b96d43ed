package world

// Speed is one of the six movement speeds
type Speed string

// Speeds
const (
	SpeedBurrow Speed = "Burrow"
	SpeedClimb  Speed = "Climb"
	SpeedFly    Speed = "Fly"
	SpeedGlide  Speed = "Glide"
	SpeedSwim   Speed = "Swim"
	SpeedWalk   Speed = "Walk"
)

var allSpeeds = []Speed{
	SpeedBurrow,
	SpeedClimb,
	SpeedFly,
	SpeedGlide,
	SpeedSwim,
	SpeedWalk,
}

var speedsByName = indexNames(allSpeeds)

// AllSpeeds returns every speed in display order
func AllSpeeds() []Speed {
	return append([]Speed(nil), allSpeeds...)
}

// ParseSpeed matches s against the speed names, ignoring case
func ParseSpeed(s string) (Speed, bool) {
	sp, ok := speedsByName[normalizeName(s)]
	return sp, ok
}

// String returns the speed name
func (s Speed) String() string {
	return string(s)
}
