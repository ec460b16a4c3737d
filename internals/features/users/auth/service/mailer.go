package service

import (
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"

	"teep_backend/internals/configs"
)

// SendConfirmationEmail mails the one-time confirmation link through Resend.
// A missing API key disables mailing (local dev), leaving the link in the log.
func SendConfirmationEmail(toEmail, toName, token string) error {
	confirmURL := fmt.Sprintf("%s/api/auth/confirm?token=%s", configs.AppBaseURL, token)

	if configs.ResendAPIKey == "" {
		log.Printf("[MAIL] RESEND_API_KEY not set, confirmation link for %s: %s", toEmail, confirmURL)
		return nil
	}

	client := resend.NewClient(configs.ResendAPIKey)
	params := &resend.SendEmailRequest{
		From:    configs.MailFromAddress,
		To:      []string{toEmail},
		Subject: "Confirme seu email - Teep",
		Html: fmt.Sprintf(
			`<p>Olá %s!</p>
<p>Bem-vindo ao Teep. Para ativar sua conta, confirme seu email clicando no link abaixo:</p>
<p><a href="%s">Confirmar email</a></p>
<p>Se você não criou esta conta, ignore esta mensagem.</p>`,
			toName, confirmURL,
		),
	}

	if _, err := client.Emails.Send(params); err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}
