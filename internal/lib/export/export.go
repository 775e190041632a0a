// Package export flattens checkout and registration documents into the
// tabular rows of the admin spreadsheet report.
package export

import (
	"fmt"
	"io"
	"strings"

	"eventCheckout/internal/models"

	"github.com/xuri/excelize/v2"
)

// Headers are the spreadsheet column labels, in order.
func Headers() []string {
	return []string{
		"Evento",
		"Data do evento",
		"Inscrição",
		"Participante",
		"CPF",
		"E-mail",
		"Telefone",
		"Situação da inscrição",
		"Compra",
		"Comprador",
		"Tipo de compra",
		"Quantidade",
		"Cortesias",
		"Valor total",
		"Forma de pagamento",
		"Situação do pagamento",
		"Situação da compra",
		"Criada em",
	}
}

var registrationStatusLabels = map[models.RegistrationStatus]string{
	models.RegistrationStatusOK:        "Confirmada",
	models.RegistrationStatusPending:   "Pendente",
	models.RegistrationStatusCancelled: "Cancelada",
	models.RegistrationStatusInvalid:   "Inválida",
}

var checkoutStatusLabels = map[models.CheckoutStatus]string{
	models.CheckoutStatusPending:   "Pendente",
	models.CheckoutStatusCompleted: "Concluída",
	models.CheckoutStatusApproved:  "Aprovada",
	models.CheckoutStatusPaid:      "Paga",
	models.CheckoutStatusRefunded:  "Reembolsada",
	models.CheckoutStatusDeleted:   "Cancelada",
}

var checkoutTypeLabels = map[models.CheckoutType]string{
	models.CheckoutTypeAcquire: "Compra direta",
	models.CheckoutTypeVoucher: "Voucher",
	models.CheckoutTypeAdmin:   "Cortesia",
}

var paymentMethodLabels = map[models.PaymentMethod]string{
	models.PaymentMethodTransfer:   "Transferência",
	models.PaymentMethodCommitment: "Empenho",
}

var paymentStatusLabels = map[models.PaymentStatus]string{
	models.PaymentStatusPending:   "Pendente",
	models.PaymentStatusCommitted: "Empenhado",
	models.PaymentStatusPaid:      "Pago",
}

// Row flattens one registration, its parent checkout (nil for voucher-less
// flows that lost their checkout) and the event into one spreadsheet line.
func Row(event *models.Event, checkout *models.Checkout, reg *models.Registration) []string {
	row := []string{
		event.Title,
		event.Date.Format("02/01/2006"),
		reg.ID,
		reg.Attendee.Name,
		FormatCPF(reg.Attendee.CPF),
		reg.Attendee.Email,
		reg.Attendee.Phone,
		registrationStatusLabels[reg.Status],
	}

	if checkout == nil {
		return append(row, "", "", "", "", "", "", "", "", "", reg.CreatedAt.Format("02/01/2006 15:04"))
	}

	buyer := checkout.Billing.Name
	if checkout.LegalEntity == models.LegalEntityOrganization {
		buyer = checkout.Billing.CompanyName
	}

	method, stage := "", ""
	if checkout.Payment != nil {
		method = paymentMethodLabels[checkout.Payment.Method]
		stage = paymentStatusLabels[checkout.Payment.Status]
	}

	return append(row,
		checkout.ID,
		buyer,
		checkoutTypeLabels[checkout.Type],
		fmt.Sprintf("%d", checkout.Quantity),
		fmt.Sprintf("%d", checkout.ComplimentarySlots),
		FormatCents(checkout.AmountInCents),
		method,
		stage,
		checkoutStatusLabels[checkout.Status],
		checkout.CreatedAt.Format("02/01/2006 15:04"),
	)
}

// FormatCents renders an amount of cents as Brazilian currency, e.g.
// 1234567 -> "R$ 12.345,67".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	reais := cents / 100
	rest := cents % 100

	digits := fmt.Sprintf("%d", reais)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), rest)
}

// FormatCPF renders an 11-digit CPF as 000.000.000-00. Anything else is
// returned unchanged.
func FormatCPF(cpf string) string {
	if len(cpf) != 11 {
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s", cpf[0:3], cpf[3:6], cpf[6:9], cpf[9:11])
}

// FormatCNPJ renders a 14-digit CNPJ as 00.000.000/0000-00.
func FormatCNPJ(cnpj string) string {
	if len(cnpj) != 14 {
		return cnpj
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", cnpj[0:2], cnpj[2:5], cnpj[5:8], cnpj[8:12], cnpj[12:14])
}

const sheetName = "Inscrições"

// WriteXLSX writes the header row plus data rows as a spreadsheet.
func WriteXLSX(w io.Writer, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	if err := writeRow(f, 1, Headers()); err != nil {
		return err
	}

	for i, row := range rows {
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write spreadsheet: %w", err)
	}

	return nil
}

func writeRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}

	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("set row %d: %w", rowNum, err)
	}

	return nil
}
