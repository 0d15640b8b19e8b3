package department

import "context"

// StoreAPI abstracts the department storage layer for handlers and tests.
type StoreAPI interface {
	ListDepartments(ctx context.Context) ([]Department, error)
	GetDepartment(ctx context.Context, id int64) (*Department, error)
}
