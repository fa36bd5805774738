// internal/email/mailer/team_space_invitation.go
package mailer

import "github.com/collabnest/teamspace/internal/email"

// InvitationTemplateData contains data for the team space invitation email template
type InvitationTemplateData struct {
	FirstName     string
	TeamSpaceName string
	InviterName   string
	Role          string
	TeamSpaceLink string
}

// SendTeamSpaceInvitation notifies a user that they were added to a team space
func SendTeamSpaceInvitation(s *email.Service, to string, data InvitationTemplateData) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "TeamSpace",
		Subject:      "You have been added to the " + data.TeamSpaceName + " team space",
		TemplateName: "team_space_invitation",
		TemplateData: data,
	}

	return s.SendEmail(emailData)
}
