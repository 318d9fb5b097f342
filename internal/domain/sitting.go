package domain

import "time"

// SittingEntry is one append-only line in a bundle's history.
type SittingEntry struct {
	Seq       int              `json:"seq"`
	Date      time.Time        `json:"date"`
	StaffID   int64            `json:"staffId"`
	StaffName string           `json:"staffName"`
	Type      SittingEntryType `json:"type"`
}

// SittingBundleSubscription is a prepaid fixed count of visits for one
// service. Like the value wallet it is an aggregate root; sittingsUsed,
// remainingSittings and the history move together or not at all.
type SittingBundleSubscription struct {
	ID                int64          `json:"id"`
	SalonID           int64          `json:"salonId"`
	CustomerMobile    string         `json:"customerMobile"`
	CustomerName      string         `json:"customerName"`
	TemplateID        int64          `json:"templateId"`
	TemplateName      string         `json:"templateName"`
	ServiceName       string         `json:"serviceName"`
	UnitPrice         float64        `json:"unitPrice"`
	TotalSittings     int            `json:"totalSittings"`
	SittingsUsed      int            `json:"sittingsUsed"`
	RemainingSittings int            `json:"remainingSittings"`
	PaidAmount        float64        `json:"paidAmount"`
	AssignedDate      time.Time      `json:"assignedDate"`
	ExpiryDate        time.Time      `json:"expiryDate"`
	Status            SittingStatus  `json:"status"`
	History           []SittingEntry `json:"history"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// NewSittingBundle activates a bundle from a template. When firstStaff is
// non-nil the first sitting is redeemed on the spot.
func NewSittingBundle(t SittingTemplate, salonID int64, mobile, name, serviceName string, unitPrice, paidAmount float64, assigned time.Time, firstStaff *SittingEntry) (*SittingBundleSubscription, error) {
	sub := &SittingBundleSubscription{
		SalonID:           salonID,
		CustomerMobile:    mobile,
		CustomerName:      name,
		TemplateID:        t.ID,
		TemplateName:      t.Name,
		ServiceName:       serviceName,
		UnitPrice:         unitPrice,
		TotalSittings:     t.TotalSittings,
		RemainingSittings: t.TotalSittings,
		PaidAmount:        paidAmount,
		AssignedDate:      assigned,
		ExpiryDate:        assigned.AddDate(1, 0, 0),
		Status:            SittingActive,
	}
	sub.append(assigned, 0, "", SittingActivation)

	if firstStaff != nil {
		if err := sub.RedeemSitting(assigned, firstStaff.StaffID, firstStaff.StaffName); err != nil {
			return nil, err
		}
	}
	return sub, nil
}

// RedeemSitting consumes one sitting for the given staff member. The bundle is
// untouched when nothing remains.
func (s *SittingBundleSubscription) RedeemSitting(date time.Time, staffID int64, staffName string) error {
	if s.RemainingSittings == 0 {
		return ErrNoSittingsRemaining
	}
	s.SittingsUsed++
	s.RemainingSittings--
	s.append(date, staffID, staffName, SittingRedemption)
	if s.RemainingSittings == 0 {
		s.Status = SittingConsumed
	}
	return nil
}

func (s *SittingBundleSubscription) append(date time.Time, staffID int64, staffName string, t SittingEntryType) {
	s.History = append(s.History, SittingEntry{
		Seq:       len(s.History) + 1,
		Date:      date,
		StaffID:   staffID,
		StaffName: staffName,
		Type:      t,
	})
}
