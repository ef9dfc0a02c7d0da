package service

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"szepseg-katalogus/internal/config"
)

type EmailService interface {
	SendApprovalEmail(ctx context.Context, toEmail, providerName string) error
}

type emailService struct {
	client *resend.Client
	config *config.Config
}

func NewEmailService(cfg *config.Config) EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &emailService{
		client: client,
		config: cfg,
	}
}

func (s *emailService) SendApprovalEmail(ctx context.Context, toEmail, providerName string) error {
	subject := "Hirdetésed jóváhagyásra került!"

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="hu">
<head>
	<meta charset="UTF-8">
	<title>Hirdetés jóváhagyva</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9fafb;">

	<div style="background: linear-gradient(135deg, #ec4899 0%%, #be185d 100%%); padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
		<h1 style="color: #ffffff; margin: 0; font-size: 28px;">
			Szépség Katalógus
		</h1>
	</div>

	<div style="background-color: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px;">

		<h2 style="color: #111827; margin-top: 0;">
			Kedves %s!
		</h2>

		<p>
			Örömmel értesítünk, hogy a hirdetésed átnéztük és jóváhagytuk.
			Mostantól megjelenik a katalógusban.
		</p>

		<div style="text-align: center; margin: 30px 0;">
			<a href="%s"
			   style="background-color: #ec4899; color: #ffffff; padding: 14px 28px; text-decoration: none; border-radius: 6px; font-weight: bold; display: inline-block;">
				Megtekintés
			</a>
		</div>

		<p style="font-size: 14px; color: #6b7280;">
			Üdvözlettel,<br>
			<strong>Szépség Katalógus csapata</strong>
		</p>
	</div>

</body>
</html>`, providerName, fmt.Sprintf("https://%s", s.config.Domain))

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Szépség Katalógus <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    html,
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}
