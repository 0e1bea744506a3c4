package models

import "time"

// subscriptionGracePeriod is how long a subscription stays active after its period ends.
const subscriptionGracePeriod = 24 * time.Hour

type Subscription struct {
	ID               int64
	UserID           string
	CustomerID       string
	SubscriptionID   string
	PriceID          string
	CurrentPeriodEnd time.Time
}

func (s Subscription) IsActive(now time.Time) bool {
	if s.PriceID == "" || s.CurrentPeriodEnd.IsZero() {
		return false
	}
	return s.CurrentPeriodEnd.Add(subscriptionGracePeriod).After(now)
}

type Admin struct {
	UserID    string
	CreatedAt time.Time
}
