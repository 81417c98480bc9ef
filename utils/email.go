package utils

import (
	"fmt"
	"net/smtp"

	"course-hub/config"
)

// SendCourseRequestEmail notifies the site operator that a visitor
// asked for a course. Skips silently when SMTP is not configured.
func SendCourseRequestEmail(courseTitle, description, requesterEmail string) error {
	from := config.AppConfig.EmailFrom
	pass := config.AppConfig.EmailPass
	to := config.AppConfig.AdminEmail

	if from == "" || to == "" {
		return nil
	}

	msg := fmt.Sprintf(`Subject: Course Hub - New Course Request

A visitor requested a new course.

Course: %s
Details: %s
Contact: %s

Course Hub
`, courseTitle, description, requesterEmail)

	return smtp.SendMail(
		"smtp.gmail.com:587",
		smtp.PlainAuth("", from, pass, "smtp.gmail.com"),
		from,
		[]string{to},
		[]byte(msg),
	)
}
