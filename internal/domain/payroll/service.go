package payroll

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"hrms/internal/domain/authz"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

func (s *Service) CreateRecord(ctx context.Context, p authz.Principal, input RecordInput) (Record, error) {
	resource := authz.Resource{Kind: authz.KindPayroll, OwnerEmployeeID: input.EmployeeID}
	if decision := authz.Decide(p, resource, authz.ActionCreate); !decision.Allowed {
		return Record{}, authz.NewError(decision.Reason, "payroll record creation denied")
	}
	if input.Currency == "" {
		input.Currency = "USD"
	}
	net := input.Gross - input.Deductions
	id, err := s.Store.Create(ctx, input, net)
	if err != nil {
		return Record{}, err
	}
	return s.Store.Get(ctx, id)
}

func (s *Service) GetRecord(ctx context.Context, p authz.Principal, recordID string) (Record, error) {
	rec, err := s.Store.Get(ctx, recordID)
	if err != nil {
		return Record{}, err
	}
	resource := authz.Resource{Kind: authz.KindPayroll, OwnerEmployeeID: rec.EmployeeID}
	if decision := authz.Decide(p, resource, authz.ActionRead); !decision.Allowed {
		return Record{}, authz.NewError(decision.Reason, "payroll record read denied")
	}
	return rec, nil
}

func (s *Service) ListRecords(ctx context.Context, p authz.Principal, limit, offset int) ([]Record, error) {
	decision := authz.Decide(p, authz.Resource{Kind: authz.KindPayroll}, authz.ActionList)
	if !decision.Allowed {
		return nil, authz.NewError(decision.Reason, "payroll listing denied")
	}
	return s.Store.List(ctx, *decision.Filter, limit, offset)
}

// Payslip renders a record as a PDF. Access follows the same read decision as
// the record itself; the document is generated on demand and never stored.
func (s *Service) Payslip(ctx context.Context, p authz.Principal, recordID, employeeName string) ([]byte, error) {
	rec, err := s.GetRecord(ctx, p, recordID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	if employeeName != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employeeName))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s",
		rec.PeriodStart.Format("2006-01-02"), rec.PeriodEnd.Format("2006-01-02")))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %.2f %s", rec.Gross, rec.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %.2f %s", rec.Deductions, rec.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %.2f %s", rec.Net, rec.Currency))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
