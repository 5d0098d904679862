package localstore

import (
	"context"
	"fmt"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/employee"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/fixtures"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/pkg/localdb"
)

type employeeRepository struct {
	kv localdb.KV
}

func NewEmployeeRepository(kv localdb.KV) employee.Repository {
	return &employeeRepository{kv: kv}
}

// employeeDocument is the stored shape of an Employee. The entity hides
// PasswordHash from API responses, so the document re-adds it for
// persistence.
type employeeDocument struct {
	employee.Employee
	PasswordHash string `json:"passwordHash"`
}

func toDocuments(employees []employee.Employee) []employeeDocument {
	docs := make([]employeeDocument, 0, len(employees))
	for _, emp := range employees {
		docs = append(docs, employeeDocument{Employee: emp, PasswordHash: emp.PasswordHash})
	}
	return docs
}

func fromDocuments(docs []employeeDocument) []employee.Employee {
	employees := make([]employee.Employee, 0, len(docs))
	for _, doc := range docs {
		emp := doc.Employee
		emp.PasswordHash = doc.PasswordHash
		employees = append(employees, emp)
	}
	return employees
}

// Load implements employee.Repository. The default roster is written on
// first access so later reads and writes see a populated directory.
func (e *employeeRepository) Load(ctx context.Context) ([]employee.Employee, error) {
	var docs []employeeDocument
	found, err := e.kv.Get(ctx, localdb.KeyEmployeesDB, &docs)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	if !found {
		roster := fixtures.DefaultRoster()
		if err := e.kv.Set(ctx, localdb.KeyEmployeesDB, toDocuments(roster)); err != nil {
			return nil, fmt.Errorf("failed to seed employees: %w", err)
		}
		return roster, nil
	}
	return fromDocuments(docs), nil
}

// Save implements employee.Repository.
func (e *employeeRepository) Save(ctx context.Context, employees []employee.Employee) error {
	if err := e.kv.Set(ctx, localdb.KeyEmployeesDB, toDocuments(employees)); err != nil {
		return fmt.Errorf("failed to save employees: %w", err)
	}
	return nil
}

// AuditLogs implements employee.Repository.
func (e *employeeRepository) AuditLogs(ctx context.Context) ([]employee.AuditEntry, error) {
	var entries []employee.AuditEntry
	found, err := e.kv.Get(ctx, localdb.KeyAuditLogs, &entries)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit logs: %w", err)
	}
	if !found {
		return []employee.AuditEntry{}, nil
	}
	return entries, nil
}

// AppendAudit implements employee.Repository.
func (e *employeeRepository) AppendAudit(ctx context.Context, entry employee.AuditEntry) error {
	entries, err := e.AuditLogs(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	if err := e.kv.Set(ctx, localdb.KeyAuditLogs, entries); err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return nil
}
