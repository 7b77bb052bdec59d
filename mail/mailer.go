// mail/mailer.go
package mail

import (
	"fmt"
	"log"
	"strings"

	"olilab_backend/models"
)

// Mailer formats admin digest messages and writes them to the log. There is no
// SMTP integration; delivery stays a logged side effect. A nil Mailer is a
// no-op.
type Mailer struct{}

func New() *Mailer { return &Mailer{} }

// SendNewUserDigest tells every approved admin about a fresh registration.
func (m *Mailer) SendNewUserDigest(newUser models.User, admins []models.User) {
	if m == nil {
		return
	}
	subject := fmt.Sprintf("New User Registration: %s", newUser.FullName)
	var b strings.Builder
	fmt.Fprintf(&b, "A new user has just signed up for an account.\n")
	fmt.Fprintf(&b, "Full Name: %s\nUsername: %s\nEmail: %s\nRole: %s\n",
		newUser.FullName, newUser.Username, newUser.Email, newUser.Role)
	if newUser.LRN != "" {
		fmt.Fprintf(&b, "LRN: %s\n", newUser.LRN)
	}
	if newUser.GradeLevel != "" {
		fmt.Fprintf(&b, "Grade: %s - %s\n", newUser.GradeLevel, newUser.Section)
	}
	for _, admin := range admins {
		m.send(admin.Email, subject, b.String())
	}
}

func (m *Mailer) send(to, subject, body string) {
	log.Printf("mail: to=%s subject=%q\n%s", to, subject, body)
}
