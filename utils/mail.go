package utils

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
)

//go:embed templates/*.html
var templateFS embed.FS

var receiptTemplate = template.Must(template.ParseFS(templateFS, "templates/order_receipt.html"))

type ReceiptLine struct {
	Category string
	Color    string
	Quantity int
}

type ReceiptEmailData struct {
	Name   string
	BillNo string
	Date   string
	Lines  []ReceiptLine
}

// MailConfigured reports whether the SMTP settings are present.
func MailConfigured() bool {
	return os.Getenv("FROM_EMAIL") != "" && os.Getenv("SMTP_ADDRESS") != ""
}

func RenderReceipt(data ReceiptEmailData) (string, error) {
	var body bytes.Buffer
	if err := receiptTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}
	return body.String(), nil
}

func SendReceiptEmail(emailTo string, data ReceiptEmailData) error {
	body, err := RenderReceipt(data)
	if err != nil {
		return err
	}

	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		os.Getenv("FROM_EMAIL"),
		emailTo,
		"Your order "+data.BillNo+" has been placed",
		body,
	)

	auth := smtp.PlainAuth(
		"",
		os.Getenv("FROM_EMAIL"),
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("FROM_EMAIL_SMTP"),
	)

	err = smtp.SendMail(os.Getenv("SMTP_ADDRESS"), auth, os.Getenv("FROM_EMAIL"), []string{emailTo}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
