// file: internals/features/dashboard/dto/dashboard_dto.go
package dto

// DashboardResponse is the "Painel Principal" aggregate: per-entity
// counts plus the money picture for the current month.
type DashboardResponse struct {
	TotalStudents  int64   `json:"total_students"`
	TotalClasses   int64   `json:"total_classes"`
	TotalLessons   int64   `json:"total_lessons"`
	TotalMaterials int64   `json:"total_materials"`
	MonthReference string  `json:"month_reference"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	PendingAmount  float64 `json:"pending_amount"`
}
