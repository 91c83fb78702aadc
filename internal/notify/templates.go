package notify

import (
	"bytes"
	"fmt"
	"html/template"
)

// ContactNotification is the payload carried from a public contact-form
// submission into the dispatcher
type ContactNotification struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Company      string `json:"company"`
	BusinessType string `json:"businessType" binding:"required"`
	Goals        string `json:"goals"`
	BudgetRange  string `json:"budgetRange"`
	Timeline     string `json:"timeline"`
}

var adminTemplate = template.Must(template.New("admin").Parse(`
<h2>New Contact Form Submission</h2>
<p>You have received a new inquiry from the Fortera Digital website.</p>

<h3>Contact Details</h3>
<table style="border-collapse: collapse; width: 100%; max-width: 600px;">
  <tr style="border-bottom: 1px solid #eee;">
    <td style="padding: 8px; font-weight: bold;">Name:</td>
    <td style="padding: 8px;">{{.Name}}</td>
  </tr>
  <tr style="border-bottom: 1px solid #eee;">
    <td style="padding: 8px; font-weight: bold;">Email:</td>
    <td style="padding: 8px;"><a href="mailto:{{.Email}}">{{.Email}}</a></td>
  </tr>
  {{if .Company}}
  <tr style="border-bottom: 1px solid #eee;">
    <td style="padding: 8px; font-weight: bold;">Company:</td>
    <td style="padding: 8px;">{{.Company}}</td>
  </tr>
  {{end}}
  <tr style="border-bottom: 1px solid #eee;">
    <td style="padding: 8px; font-weight: bold;">Business Type:</td>
    <td style="padding: 8px;">{{.BusinessType}}</td>
  </tr>
  {{if .BudgetRange}}
  <tr style="border-bottom: 1px solid #eee;">
    <td style="padding: 8px; font-weight: bold;">Budget Range:</td>
    <td style="padding: 8px;">{{.BudgetRange}}</td>
  </tr>
  {{end}}
  {{if .Timeline}}
  <tr style="border-bottom: 1px solid #eee;">
    <td style="padding: 8px; font-weight: bold;">Timeline:</td>
    <td style="padding: 8px;">{{.Timeline}}</td>
  </tr>
  {{end}}
</table>

{{if .Goals}}
<h3>Goals &amp; Requirements</h3>
<p style="background: #f5f5f5; padding: 16px; border-radius: 8px;">{{.Goals}}</p>
{{end}}

<hr style="margin: 24px 0; border: none; border-top: 1px solid #eee;" />
<p style="color: #666; font-size: 12px;">This notification was sent automatically from the Fortera Digital website contact form.</p>
`))

var userTemplate = template.Must(template.New("user").Parse(`
<h2>Thank you for reaching out, {{.Name}}!</h2>
<p>We've received your inquiry and our team will review it shortly.</p>
<p>You can expect to hear back from us within 24-48 business hours.</p>

<h3>What happens next?</h3>
<ol>
  <li>Our team reviews your submission</li>
  <li>We'll reach out to schedule a discovery call</li>
  <li>We'll discuss your goals and create a tailored strategy</li>
</ol>

<p>In the meantime, feel free to explore our <a href="https://forteraglobalgroup.com/digital/portfolio">portfolio</a> to see our recent work.</p>

<hr style="margin: 24px 0; border: none; border-top: 1px solid #eee;" />
<p style="color: #666; font-size: 12px;">
  Fortera Digital - Building Your Digital Future<br/>
  This is an automated response. Please do not reply directly to this email.
</p>
`))

// AdminEmailHTML renders the administrative summary of one submission
func AdminEmailHTML(n ContactNotification) (string, error) {
	var buf bytes.Buffer
	if err := adminTemplate.Execute(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// UserEmailHTML renders the acknowledgment sent back to the submitter
func UserEmailHTML(n ContactNotification) (string, error) {
	var buf bytes.Buffer
	if err := userTemplate.Execute(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// AdminSubject returns the alert subject line for a submission
func AdminSubject(n ContactNotification) string {
	return fmt.Sprintf("New Contact Submission from %s", n.Name)
}

// UserSubject is the fixed acknowledgment subject line
const UserSubject = "We've received your inquiry - Fortera Digital"
