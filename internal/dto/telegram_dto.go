package dto

import "encoding/json"

const (
	PeriodToday = "today"
	PeriodWeek  = "week"
)

type ChatIDParam struct {
	ChatID string `params:"chat_id" validate:"required"`
}

type HoursQuery struct {
	Period string `query:"period" validate:"oneof=today week"`
}

type LookupFailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	ChatID  string `json:"chat_id,omitempty"`
}

type WorkerTypeUser struct {
	Id         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	WorkerType string `json:"worker_type"`
}

type WorkerTypeResponse struct {
	Success bool           `json:"success"`
	User    WorkerTypeUser `json:"user"`
}

type HoursSummary struct {
	TotalHours     float64 `json:"total_hours"`
	TotalSessions  int     `json:"total_sessions"`
	TotalGrossPay  float64 `json:"total_gross_pay"`
	TotalNetPay    float64 `json:"total_net_pay"`
	TotalDeduction float64 `json:"total_deduction"`
	CISRate        int     `json:"cis_rate"`
	HourlyRate     float64 `json:"hourly_rate"`
}

type SessionItem struct {
	Id        uint   `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Hours     string `json:"hours"`
	Location  string `json:"location"`
}

type HoursResponse struct {
	Success        bool          `json:"success"`
	Period         string        `json:"period"`
	ContractorName string        `json:"contractor_name"`
	Summary        HoursSummary  `json:"summary"`
	Sessions       []SessionItem `json:"sessions"`
}

type PaymentInfo struct {
	HourlyRate    float64 `json:"hourly_rate"`
	CISRegistered bool    `json:"cis_registered"`
	CISRate       int     `json:"cis_rate"`
	ThisWeekHours float64 `json:"this_week_hours"`
	ThisWeekGross float64 `json:"this_week_gross"`
	ThisWeekNet   float64 `json:"this_week_net"`
	CISDeduction  float64 `json:"cis_deduction"`
}

type PaymentResponse struct {
	Success        bool        `json:"success"`
	ContractorName string      `json:"contractor_name"`
	PaymentInfo    PaymentInfo `json:"payment_info"`
}

type QuoteItem struct {
	Id          uint   `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type QuotesResponse struct {
	Success        bool        `json:"success"`
	ContractorName string      `json:"contractor_name"`
	Data           []QuoteItem `json:"data"`
}

type MilestoneItem struct {
	JobId    uint            `json:"job_id"`
	Title    string          `json:"title"`
	Location string          `json:"location"`
	Status   string          `json:"status"`
	DueDate  *string         `json:"due_date"`
	Phases   json.RawMessage `json:"phases"`
}

type MilestonesResponse struct {
	Success        bool            `json:"success"`
	ContractorName string          `json:"contractor_name"`
	Data           []MilestoneItem `json:"data"`
}

type PaymentStatusItem struct {
	Id      uint    `json:"id"`
	Title   string  `json:"title"`
	Status  string  `json:"status"`
	DueDate *string `json:"due_date"`
}

type PaymentStatusSummary struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
}

type PaymentStatusResponse struct {
	Success        bool                 `json:"success"`
	ContractorName string               `json:"contractor_name"`
	Data           []PaymentStatusItem  `json:"data"`
	Summary        PaymentStatusSummary `json:"summary"`
}
