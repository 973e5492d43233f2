package kimloan

// Role is a user's role as reported by the backend.
type Role string

// Roles known to the backend.
const (
	RoleAdmin              Role = "admin"
	RoleBranchManager      Role = "branch_manager"
	RoleProcurementOfficer Role = "procurement_officer"
	RoleLoanOfficer        Role = "loan_officer"
	RoleCustomer           Role = "customer"
)

// LoginRequest is the payload for POST /auth/login. Username may also be
// a phone number; the backend matches either.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned from POST /auth/login and POST /auth/refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// RefreshRequest is the payload for POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ChangePasswordRequest is the payload for POST /auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// TokenPair holds the access/refresh token pair for a session. Both are
// opaque to this client; access token expiry is only ever discovered via a
// 401 from the backend.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// User is the current-user record from GET /auth/me, also returned by the
// user management endpoints.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email,omitempty"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	NationalID  string `json:"national_id,omitempty"`
	Role        Role   `json:"role"`
	BranchID    int64  `json:"branch_id,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// CreateUserRequest is the payload for POST /users/.
type CreateUserRequest struct {
	Username    string `json:"username"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email,omitempty"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	NationalID  string `json:"national_id,omitempty"`
	Password    string `json:"password"`
	RoleID      int64  `json:"role_id"`
	BranchID    int64  `json:"branch_id,omitempty"`
}

// UpdateUserRequest is the payload for PUT /users/{id}. Nil fields are
// omitted and left unchanged by the backend.
type UpdateUserRequest struct {
	Username    *string `json:"username,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Email       *string `json:"email,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	BranchID    *int64  `json:"branch_id,omitempty"`
	RoleID      *int64  `json:"role_id,omitempty"`
}

// Branch is a branch record from the branch management endpoints.
type Branch struct {
	ID                     int64  `json:"id"`
	Name                   string `json:"name"`
	Code                   string `json:"code"`
	Address                string `json:"address,omitempty"`
	PhoneNumber            string `json:"phone_number,omitempty"`
	ManagerID              int64  `json:"manager_id,omitempty"`
	ManagerName            string `json:"manager_name,omitempty"`
	ProcurementOfficerID   int64  `json:"procurement_officer_id,omitempty"`
	ProcurementOfficerName string `json:"procurement_officer_name,omitempty"`
	IsActive               bool   `json:"is_active"`
	TotalUsers             int    `json:"total_users"`
	TotalGroups            int    `json:"total_groups"`
	ActiveLoans            int    `json:"active_loans"`
}

// CreateBranchRequest is the payload for POST /branches/.
type CreateBranchRequest struct {
	Name                 string `json:"name"`
	Code                 string `json:"code"`
	Address              string `json:"address,omitempty"`
	PhoneNumber          string `json:"phone_number,omitempty"`
	ManagerID            int64  `json:"manager_id,omitempty"`
	ProcurementOfficerID int64  `json:"procurement_officer_id,omitempty"`
}

// UpdateBranchRequest is the payload for PUT /branches/{id}. Nil fields are
// omitted and left unchanged by the backend. The branch code is immutable.
type UpdateBranchRequest struct {
	Name                 *string `json:"name,omitempty"`
	Address              *string `json:"address,omitempty"`
	PhoneNumber          *string `json:"phone_number,omitempty"`
	ManagerID            *int64  `json:"manager_id,omitempty"`
	ProcurementOfficerID *int64  `json:"procurement_officer_id,omitempty"`
	IsActive             *bool   `json:"is_active,omitempty"`
}

// Group is a customer group managed by a loan officer.
type Group struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	BranchID      int64  `json:"branch_id"`
	LoanOfficerID int64  `json:"loan_officer_id,omitempty"`
	MemberCount   int    `json:"member_count"`
	IsActive      bool   `json:"is_active"`
}

// ProductCategory groups loan products in the catalogue.
type ProductCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// InventoryItem is one product's stock record at a branch. Status is
// computed server-side from the quantity against the reorder and critical
// points: ok, low or critical.
type InventoryItem struct {
	ID              int64  `json:"id"`
	BranchID        int64  `json:"branch_id"`
	BranchName      string `json:"branch_name,omitempty"`
	LoanProductID   int64  `json:"loan_product_id"`
	ProductName     string `json:"product_name,omitempty"`
	CurrentQuantity int    `json:"current_quantity"`
	ReorderPoint    int    `json:"reorder_point"`
	CriticalPoint   int    `json:"critical_point"`
	Status          string `json:"status"`
	LastRestockedAt string `json:"last_restocked_at,omitempty"`
}

// LoanProduct is a product from the loan products endpoints. BuyingPrice
// and ProfitMargin are only populated for admin callers.
type LoanProduct struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	CategoryID   int64   `json:"category_id"`
	CategoryName string  `json:"category_name,omitempty"`
	Description  string  `json:"description,omitempty"`
	BuyingPrice  float64 `json:"buying_price,omitempty"`
	SellingPrice float64 `json:"selling_price"`
	ProfitMargin float64 `json:"profit_margin,omitempty"`
	IsActive     bool    `json:"is_active"`
}

// Loan is a loan record.
type Loan struct {
	ID                int64   `json:"id"`
	LoanNumber        string  `json:"loan_number"`
	BorrowerID        int64   `json:"borrower_id"`
	BorrowerName      string  `json:"borrower_name,omitempty"`
	LoanProductID     int64   `json:"loan_product_id,omitempty"`
	TotalAmount       float64 `json:"total_amount"`
	InterestAmount    float64 `json:"interest_amount"`
	ChargeFeeAmount   float64 `json:"charge_fee_amount"`
	Balance           float64 `json:"balance"`
	Status            string  `json:"status"`
	StartDate         string  `json:"start_date"`
	DueDate           string  `json:"due_date"`
	NextPaymentDate   string  `json:"next_payment_date,omitempty"`
	NextPaymentAmount float64 `json:"next_payment_amount,omitempty"`
	IsOverdue         bool    `json:"is_overdue"`
}

// ScheduleEntry is one installment from GET /loans/{id}/payment-schedule.
type ScheduleEntry struct {
	DueDate    string  `json:"due_date"`
	Amount     float64 `json:"amount"`
	Balance    float64 `json:"balance"`
	Status     string  `json:"status"`
	PaidAmount float64 `json:"paid_amount"`
}

// Payment is a payment record.
type Payment struct {
	ID            int64   `json:"id"`
	PaymentNumber string  `json:"payment_number"`
	LoanID        int64   `json:"loan_id"`
	PayerID       int64   `json:"payer_id,omitempty"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
}

// ManualPaymentRequest is the payload for POST /payments/manual.
type ManualPaymentRequest struct {
	LoanID        int64   `json:"loan_id"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes,omitempty"`
}

// DashboardStats is returned from GET /analytics/dashboard.
type DashboardStats struct {
	Organization OrganizationOverview `json:"organization"`
	Financial    FinancialSummary     `json:"financial"`
	Loans        LoanBreakdown        `json:"loans"`
	Alerts       DashboardAlerts      `json:"alerts"`
}

// OrganizationOverview summarizes the org-wide headcounts.
type OrganizationOverview struct {
	TotalCustomers    int `json:"total_customers"`
	TotalBranches     int `json:"total_branches"`
	TotalLoanOfficers int `json:"total_loan_officers"`
	TotalGroups       int `json:"total_groups"`
}

// FinancialSummary summarizes disbursement and collection totals.
type FinancialSummary struct {
	TotalLoansDisbursed  int     `json:"total_loans_disbursed"`
	TotalAmountDisbursed float64 `json:"total_amount_disbursed"`
	TotalPayments        int     `json:"total_payments"`
	TotalCollected       float64 `json:"total_collected"`
	OutstandingBalance   float64 `json:"outstanding_balance"`
	ArrearsAmount        float64 `json:"arrears_amount"`
	CollectionRate       float64 `json:"collection_rate"`
	ArrearsRate          float64 `json:"arrears_rate"`
}

// LoanBreakdown counts loans by status.
type LoanBreakdown struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Arrears   int `json:"arrears"`
	Total     int `json:"total"`
}

// DashboardAlerts flags items needing attention.
type DashboardAlerts struct {
	HighRiskLoans      int     `json:"high_risk_loans"`
	HighRiskAmount     float64 `json:"high_risk_amount"`
	LowStockItems      int     `json:"low_stock_items"`
	CriticalStockItems int     `json:"critical_stock_items"`
	PendingApprovals   int     `json:"pending_approvals"`
}

// Notification is a notification record for the current user.
type Notification struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Message          string `json:"message"`
	NotificationType string `json:"notification_type"`
	IsRead           bool   `json:"is_read"`
	CreatedAt        string `json:"created_at"`
}

// UnreadCount is returned from GET /notifications/unread-count.
type UnreadCount struct {
	Count int `json:"unread_count"`
}
