package mailer

// EmailJob is the JSON payload placed on the RabbitMQ queue. The producer
// renders subject/text/html up front; the worker only delivers.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// WelcomeJob builds the registration welcome mail.
func WelcomeJob(to, fullName string) EmailJob {
	name := fullName
	if name == "" {
		name = "there"
	}
	return EmailJob{
		To:      to,
		Subject: "Welcome to Taskhub",
		Text:    "Hi " + name + ",\n\nYour Taskhub account is ready. Log in to start organizing your tasks.\n",
	}
}
