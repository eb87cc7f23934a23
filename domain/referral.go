package domain

import "time"

// Referral links a newly-registered member to the member whose code they
// used. Written once during registration, never updated.
type Referral struct {
	ID           int       `json:"id"`
	MemberID     int       `json:"member_id"`
	ReferralCode string    `json:"referral_code"`
	ReferralName string    `json:"referral_name"`
	ReferredBy   int       `json:"referred_by"`
	CreatedAt    time.Time `json:"created_at"`
}
