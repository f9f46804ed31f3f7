package email

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/personnalite/estoque-api/internal/domain/entity"
	"github.com/personnalite/estoque-api/pkg/report"
	"gopkg.in/gomail.v2"
)

// Config holds SMTP configuration
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// Service sends the sales report email with the rendered PDF attached
type Service struct {
	config Config
	dialer *gomail.Dialer
}

// NewService creates a new email service
func NewService(config Config) *Service {
	return &Service{
		config: config,
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUsername, config.SMTPPassword),
	}
}

// SendSalesReport emails the report to the recipient: an HTML summary with
// the same counts and totals as the document, plus the PDF as attachment.
func (s *Service) SendSalesReport(to string, snap entity.ReportSnapshot, doc *report.Document) error {
	body, err := renderReportEmail(snap)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Relatório de Vendas - "+snap.GeneratedAt.Format("02/01/2006"))
	m.SetBody("text/html", body)
	m.Attach(doc.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(doc.Bytes)
		return err
	}))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// renderReportEmail renders the HTML summary body
func renderReportEmail(snap entity.ReportSnapshot) (string, error) {
	tmpl, err := template.New("sales_report").Parse(salesReportTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		Date      string
		Time      string
		SaleCount int
		General   string
		Dinheiro  string
		Debito    string
		Credito   string
		Pix       string
	}{
		Date:      snap.GeneratedAt.Format("02/01/2006"),
		Time:      snap.GeneratedAt.Format("15:04:05"),
		SaleCount: len(snap.Sales),
		General:   snap.Totals.General.String(),
		Dinheiro:  snap.Totals.Dinheiro.String(),
		Debito:    snap.Totals.Debito.String(),
		Credito:   snap.Totals.Credito.String(),
		Pix:       snap.Totals.Pix.String(),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// salesReportTemplate is the HTML template for the report summary email
const salesReportTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(90deg, #333, #666); color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0;">
    <h1 style="margin: 0;">Relatório de Vendas</h1>
    <p style="margin: 5px 0 0 0;">Gerado em {{.Date}} às {{.Time}}</p>
  </div>

  <div style="background: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px; border: 1px solid #ddd;">
    <h2 style="color: #333; margin-top: 0;">Resumo Rápido</h2>

    <div style="display: grid; grid-template-columns: 1fr 1fr; gap: 15px; margin-bottom: 20px;">
      <div style="background: white; padding: 15px; border-radius: 6px; border-left: 4px solid #4caf50;">
        <h3 style="margin: 0 0 5px 0; color: #333;">Total de Vendas</h3>
        <p style="margin: 0; font-size: 24px; font-weight: bold; color: #4caf50;">{{.SaleCount}}</p>
      </div>
      <div style="background: white; padding: 15px; border-radius: 6px; border-left: 4px solid #ff9800;">
        <h3 style="margin: 0 0 5px 0; color: #333;">Faturamento Total</h3>
        <p style="margin: 0; font-size: 24px; font-weight: bold; color: #ff9800;">{{.General}}</p>
      </div>
    </div>

    <h3 style="color: #333;">Por Forma de Pagamento:</h3>
    <ul style="list-style: none; padding: 0;">
      <li style="margin: 8px 0;"><strong>Dinheiro:</strong> {{.Dinheiro}}</li>
      <li style="margin: 8px 0;"><strong>Débito:</strong> {{.Debito}}</li>
      <li style="margin: 8px 0;"><strong>Crédito:</strong> {{.Credito}}</li>
      <li style="margin: 8px 0;"><strong>PIX:</strong> {{.Pix}}</li>
    </ul>

    <p style="margin-top: 25px; padding: 15px; background: #e8f5e8; border-radius: 6px; border-left: 4px solid #4caf50;">
      <strong>O relatório completo está em anexo!</strong><br>
      Verifique o arquivo PDF para ver todos os detalhes das vendas.
    </p>
  </div>

  <div style="text-align: center; margin-top: 20px; padding: 15px; background: #333; color: white; border-radius: 8px;">
    <p style="margin: 0;">Sistema de Controle de Estoque</p>
    <p style="margin: 5px 0 0 0; font-size: 12px; opacity: 0.8;">Relatório gerado automaticamente</p>
  </div>
</div>
`
