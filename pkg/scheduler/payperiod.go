package scheduler

import "github.com/arnavshah/mentor-scheduler-api/pkg/models"

// SplitPayPeriods puts the first lenP1 days in the first period and the rest
// in the second. The periods share the Day pointers of days.
func SplitPayPeriods(days []*models.Day, lenP1 int) (models.PayPeriod, models.PayPeriod) {
	if lenP1 < 0 {
		lenP1 = 0
	}
	if lenP1 > len(days) {
		lenP1 = len(days)
	}

	pay1 := models.PayPeriod{Days: append([]*models.Day{}, days[:lenP1]...)}
	pay2 := models.PayPeriod{Days: append([]*models.Day{}, days[lenP1:]...)}
	pay1.Recalculate()
	pay2.Recalculate()
	return pay1, pay2
}
