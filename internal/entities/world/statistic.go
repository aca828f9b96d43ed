package world

// Statistic is one of the seven derived statistics
type Statistic string

// Statistics
const (
	StatisticConstitution Statistic = "Constitution"
	StatisticInitiative   Statistic = "Initiative"
	StatisticLearning     Statistic = "Learning"
	StatisticPower        Statistic = "Power"
	StatisticPrecision    Statistic = "Precision"
	StatisticReputation   Statistic = "Reputation"
	StatisticStrength     Statistic = "Strength"
)

var allStatistics = []Statistic{
	StatisticConstitution,
	StatisticInitiative,
	StatisticLearning,
	StatisticPower,
	StatisticPrecision,
	StatisticReputation,
	StatisticStrength,
}

var statisticsByName = indexNames(allStatistics)

// AllStatistics returns every statistic in display order
func AllStatistics() []Statistic {
	return append([]Statistic(nil), allStatistics...)
}

// ParseStatistic matches s against the statistic names, ignoring case
func ParseStatistic(s string) (Statistic, bool) {
	st, ok := statisticsByName[normalizeName(s)]
	return st, ok
}

// String returns the statistic name
func (s Statistic) String() string {
	return string(s)
}
