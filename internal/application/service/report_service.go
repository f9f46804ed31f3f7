package service

import (
	"net/mail"
	"strings"

	"github.com/personnalite/estoque-api/internal/domain/entity"
	"github.com/personnalite/estoque-api/pkg/apperror"
	"github.com/personnalite/estoque-api/pkg/report"
	"github.com/sirupsen/logrus"
)

// Dispatch destinations
const (
	DestinationLocal  = "local"
	DestinationRemote = "remote"
)

// ReportRenderer renders a snapshot into the paginated PDF document.
type ReportRenderer interface {
	Render(snap entity.ReportSnapshot) (*report.Document, error)
}

// ReportMailer delivers a rendered report to an email address.
type ReportMailer interface {
	SendSalesReport(to string, snap entity.ReportSnapshot, doc *report.Document) error
}

// ReportService renders report snapshots and dispatches the document either
// back to the caller (local) or to an email address (remote).
type ReportService struct {
	renderer ReportRenderer
	mailer   ReportMailer
}

// NewReportService creates a new report service
func NewReportService(renderer ReportRenderer, mailer ReportMailer) *ReportService {
	return &ReportService{
		renderer: renderer,
		mailer:   mailer,
	}
}

// DispatchInput describes one report-generation request.
type DispatchInput struct {
	Snapshot    entity.ReportSnapshot
	Destination string
	Email       string
}

// DispatchResult carries the rendered document for local delivery or the
// confirmation message for remote delivery.
type DispatchResult struct {
	Document *report.Document
	Message  string
}

// SnapshotFromSales builds a report snapshot from raw sale records,
// recomputing the totals so the document always agrees with its sales.
func (s *ReportService) SnapshotFromSales(sales []entity.SaleRecord) entity.ReportSnapshot {
	return entity.NewReportSnapshot(sales, Aggregate(sales))
}

// Dispatch renders the snapshot and delivers it to the chosen destination.
// Remote dispatch validates the address before any render or network work;
// a delivery failure surfaces as an error and never touches the snapshot's
// source ledger.
func (s *ReportService) Dispatch(input *DispatchInput) (*DispatchResult, error) {
	switch input.Destination {
	case DestinationLocal:
		doc, err := s.renderer.Render(input.Snapshot)
		if err != nil {
			return nil, err
		}
		return &DispatchResult{
			Document: doc,
			Message:  "Relatório gerado com sucesso!",
		}, nil

	case DestinationRemote:
		address, err := validateEmail(input.Email)
		if err != nil {
			return nil, err
		}

		doc, err := s.renderer.Render(input.Snapshot)
		if err != nil {
			return nil, err
		}

		if err := s.mailer.SendSalesReport(address, input.Snapshot, doc); err != nil {
			logrus.WithField("email", address).Errorf("failed to deliver report: %v", err)
			return nil, apperror.NewTransportError("Falha ao enviar o relatório por email")
		}

		logrus.WithField("email", address).Info("Sales report delivered")
		return &DispatchResult{
			Message: "Relatório enviado com sucesso para " + address + "!",
		}, nil
	}

	return nil, apperror.NewBadRequestError("Destino inválido: deve ser \"local\" ou \"remote\"")
}

func validateEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "", apperror.NewValidationError([]apperror.FieldError{
			{Field: "email", Message: "Email é obrigatório para envio remoto"},
		})
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", apperror.NewValidationError([]apperror.FieldError{
			{Field: "email", Message: "Email inválido"},
		})
	}
	return trimmed, nil
}
