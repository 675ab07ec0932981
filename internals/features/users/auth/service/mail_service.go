// file: internals/features/users/auth/service/mail_service.go
package service

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"gasku_backend/internals/configs"
)

// SendOTPEmail mengirim kode reset password ke email user. Jika SMTP
// belum dikonfigurasi, caller harus cek configs.EmailConfigured() dulu.
func SendOTPEmail(to, name, code string) error {
	port, err := strconv.Atoi(configs.SMTPPort)
	if err != nil {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", configs.SMTPUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Kode Reset Password")
	m.SetBody("text/html", fmt.Sprintf(`
		<p>Halo %s,</p>
		<p>Kode reset password kamu:</p>
		<h2 style="letter-spacing:4px">%s</h2>
		<p>Kode berlaku 10 menit. Abaikan email ini jika kamu tidak meminta reset.</p>
	`, name, code))

	d := gomail.NewDialer(configs.SMTPHost, port, configs.SMTPUser, configs.SMTPPass)
	return d.DialAndSend(m)
}
