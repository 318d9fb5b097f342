package domain

import "time"

// Enumerations
const (
	RoleSuperAdmin UserRole = "superadmin"
	RoleAdmin      UserRole = "admin"
	RoleManager    UserRole = "manager"

	StaffStylist      StaffRole = "Stylist"
	StaffManager      StaffRole = "Manager"
	StaffHousekeeping StaffRole = "Housekeeping"

	StaffActive   StaffStatus = "Active"
	StaffInactive StaffStatus = "Inactive"

	AttendancePresent AttendanceStatus = "Present"
	AttendanceWeekoff AttendanceStatus = "Weekoff"
	AttendanceLeave   AttendanceStatus = "Leave"

	PaymentCash   PaymentMode = "Cash"
	PaymentCard   PaymentMode = "Card"
	PaymentUPI    PaymentMode = "UPI"
	PaymentWallet PaymentMode = "Package Wallet"

	WalletActive        WalletStatus = "Active"
	WalletFullyConsumed WalletStatus = "FullyConsumed"
	WalletExpired       WalletStatus = "Expired"

	SittingActive   SittingStatus = "Active"
	SittingConsumed SittingStatus = "Consumed"
	SittingExpired  SittingStatus = "Expired"

	SittingActivation SittingEntryType = "Activation"
	SittingRedemption SittingEntryType = "Redemption"
)

type UserRole string
type StaffRole string
type StaffStatus string
type AttendanceStatus string
type PaymentMode string
type WalletStatus string
type SittingStatus string
type SittingEntryType string

func (r StaffRole) Valid() bool {
	switch r {
	case StaffStylist, StaffManager, StaffHousekeeping:
		return true
	}
	return false
}

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceWeekoff, AttendanceLeave:
		return true
	}
	return false
}

// User is an operator account (back office), not salon staff.
type User struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Username     string     `json:"username"`
	Role         UserRole   `json:"role"`
	PasswordHash *string    `json:"-"`
	SalonIDs     []int64    `json:"salonIds"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"-"`
}

type Salon struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Contact     string     `json:"contact"`
	GSTNumber   string     `json:"gstNumber"`
	ManagerName string     `json:"managerName"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"-"`
}

type Customer struct {
	Mobile    string    `json:"mobile"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// CatalogService is a priced service offered across outlets.
type CatalogService struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	BasePrice float64    `json:"basePrice"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"-"`
}

type Staff struct {
	ID          int64       `json:"id"`
	SalonID     int64       `json:"salonId"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	Role        StaffRole   `json:"role"`
	BaseSalary  float64     `json:"baseSalary"`
	JoiningDate time.Time   `json:"joiningDate"`
	ExitDate    *time.Time  `json:"exitDate,omitempty"`
	Status      StaffStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// SalesTarget is derived, never stored: stylists carry a 5x salary target,
// other roles have none.
func (s Staff) SalesTarget() float64 {
	if s.Role == StaffStylist {
		return s.BaseSalary * 5
	}
	return 0
}

// AttendanceMark is one staff member's mark for one calendar date.
// Writes for the same (staff, date) replace the previous mark.
type AttendanceMark struct {
	ID       int64            `json:"id"`
	StaffID  int64            `json:"staffId"`
	Date     time.Time        `json:"date"`
	Status   AttendanceStatus `json:"status"`
	CheckIn  *time.Time       `json:"checkIn,omitempty"`
	CheckOut *time.Time       `json:"checkOut,omitempty"`
}

// AttendanceStats is the monthly aggregation of a staff member's marks.
type AttendanceStats struct {
	PresentPaidDays        int `json:"presentPaidDays"`
	LOPDays                int `json:"lopDays"`
	OvertimeHours          int `json:"overtimeHours"`
	EffectiveDeductionDays int `json:"effectiveDeductionDays"`
}

type PackageTemplate struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	PaidAmount   float64    `json:"paidAmount"`
	OfferedValue float64    `json:"offeredValue"`
	SalonIDs     []int64    `json:"salonIds"`
	CreatedAt    time.Time  `json:"createdAt"`
	DeletedAt    *time.Time `json:"-"`
}

type SittingTemplate struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	PaidSittings  int        `json:"paidSittings"`
	CompSittings  int        `json:"compSittings"`
	TotalSittings int        `json:"totalSittings"`
	SalonIDs      []int64    `json:"salonIds"`
	CreatedAt     time.Time  `json:"createdAt"`
	DeletedAt     *time.Time `json:"-"`
}

type InvoiceItem struct {
	ID          int64   `json:"id"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	StaffID     int64   `json:"staffId"`
}

// WalletSettlement is the immutable audit snapshot captured when an invoice
// is paid from a value wallet. It never changes after settlement even though
// the live subscription does.
type WalletSettlement struct {
	SubscriptionID   int64   `json:"subscriptionId"`
	PackageName      string  `json:"packageName"`
	PaidAmount       float64 `json:"paidAmount"`
	PreviousBalance  float64 `json:"previousBalance"`
	RemainingBalance float64 `json:"remainingBalance"`
}

type Invoice struct {
	ID             int64             `json:"id"`
	Code           string            `json:"code"`
	SalonID        int64             `json:"salonId"`
	CustomerName   string            `json:"customerName"`
	CustomerMobile string            `json:"customerMobile"`
	Items          []InvoiceItem     `json:"items"`
	Subtotal       float64           `json:"subtotal"`
	Discount       float64           `json:"discount"`
	GST            float64           `json:"gst"`
	Total          float64           `json:"total"`
	PaymentMode    PaymentMode       `json:"paymentMode"`
	Date           time.Time         `json:"date"`
	Package        *WalletSettlement `json:"package,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// Expense is one daily cash-ledger row for an outlet.
type Expense struct {
	ID             int64     `json:"id"`
	SalonID        int64     `json:"salonId"`
	Date           time.Time `json:"date"`
	OpeningBalance float64   `json:"openingBalance"`
	CashReceived   float64   `json:"cashReceived"`
	Category       string    `json:"category"`
	ExpenseAmount  float64   `json:"expenseAmount"`
	CashDeposited  float64   `json:"cashDeposited"`
	ClosingBalance float64   `json:"closingBalance"`
	RecordedBy     string    `json:"recordedBy"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ProfitLossRecord holds the manually entered fixed costs for one
// (salon, month, year). Derived figures are recomputed live, never stored.
type ProfitLossRecord struct {
	SalonID        int64      `json:"salonId"`
	Month          time.Month `json:"month"`
	Year           int        `json:"year"`
	Rent           float64    `json:"rent"`
	Royalty        float64    `json:"royalty"`
	GST            float64    `json:"gst"`
	PowerBill      float64    `json:"powerBill"`
	ProductsBill   float64    `json:"productsBill"`
	MobileInternet float64    `json:"mobileInternet"`
	Laundry        float64    `json:"laundry"`
	Marketing      float64    `json:"marketing"`
	Others         float64    `json:"others"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// FixedCosts sums the manually entered expense fields.
func (r ProfitLossRecord) FixedCosts() float64 {
	return r.Rent + r.Royalty + r.GST + r.PowerBill + r.ProductsBill +
		r.MobileInternet + r.Laundry + r.Marketing + r.Others
}
