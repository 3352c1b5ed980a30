package client

type User struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type CurrentUser struct {
	User    User     `json:"user"`
	Company *Company `json:"company"`
}

type Company struct {
	Id          string  `json:"id"`
	UserId      string  `json:"user_id"`
	Name        string  `json:"name"`
	Industry    string  `json:"industry"`
	Description string  `json:"description"`
	LogoUrl     *string `json:"logo_url"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CompanySummary struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Industry    string  `json:"industry"`
	Description string  `json:"description,omitempty"`
	LogoUrl     *string `json:"logo_url"`
}

type CompanyInput struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Description string `json:"description,omitempty"`
}

type CompanyDetails struct {
	Company       Company        `json:"company"`
	GoodsServices []GoodsService `json:"goods_services"`
}

type CompanyPage struct {
	Companies   []Company `json:"companies"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
	TotalCount  int       `json:"totalCount"`
}

type LogoResult struct {
	LogoUrl string  `json:"logoUrl"`
	Company Company `json:"company"`
}

type GoodsService struct {
	Id          string `json:"id"`
	CompanyId   string `json:"company_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type GoodsServiceInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type Tender struct {
	Id          string          `json:"id"`
	CompanyId   string          `json:"company_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Deadline    string          `json:"deadline"`
	Budget      *float64        `json:"budget"`
	Status      string          `json:"status"`
	Expired     bool            `json:"expired"`
	DaysLeft    int             `json:"days_left"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
	Company     *CompanySummary `json:"companies,omitempty"`
}

type TenderSummary struct {
	Id       string          `json:"id"`
	Title    string          `json:"title"`
	Deadline string          `json:"deadline"`
	Budget   *float64        `json:"budget"`
	Status   string          `json:"status"`
	Expired  bool            `json:"expired"`
	Company  *CompanySummary `json:"companies,omitempty"`
}

// TenderInput.Deadline is an RFC 3339 instant.
type TenderInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Deadline    string   `json:"deadline"`
	Budget      *float64 `json:"budget,omitempty"`
}

type TenderPage struct {
	Tenders     []Tender `json:"tenders"`
	TotalPages  int      `json:"totalPages"`
	CurrentPage int      `json:"currentPage"`
	TotalCount  int      `json:"totalCount"`
}

type Application struct {
	Id                 string          `json:"id"`
	TenderId           string          `json:"tender_id"`
	ApplicantCompanyId string          `json:"applicant_company_id"`
	Proposal           string          `json:"proposal"`
	Status             string          `json:"status"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
	Tender             *TenderSummary  `json:"tenders,omitempty"`
	Company            *CompanySummary `json:"companies,omitempty"`
}

// ListOptions are sent as page, limit and search; zero values are omitted.
type ListOptions struct {
	Page   int
	Limit  int
	Search string
}
