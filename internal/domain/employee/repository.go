package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id, companyID string) (Employee, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
}
