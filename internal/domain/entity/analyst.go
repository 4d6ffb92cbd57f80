package entity

// AnalystInfo is the public profile of an authenticated analyst.
type AnalystInfo struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
