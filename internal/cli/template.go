package cli

import "fmt"

const cardTemplate = `
=== Card Details ===

ID:       {{.ID}}
Code:     {{.Code}}
Name:     {{.Name}}
{{- if .Gender }}
Gender:   {{.Gender}}
{{- end}}
{{- if .Phone }}
Phone:    {{.Phone}}
{{- end}}
{{- if .Email }}
Email:    {{.Email}}
{{- end}}
{{- if .Address }}
Address:  {{.Address}}
{{- end}}
{{- if .Birthday }}
Birthday: {{.Birthday}}
{{- end}}
{{- if .Notes }}
Notes:    {{.Notes}}
{{- end}}
{{- if .Photo }}
Photo:    {{.Photo}}
{{- end}}
{{- if .IDFront }}
ID front: {{.IDFront}}
{{- end}}
{{- if .IDBack }}
ID back:  {{.IDBack}}
{{- end}}
`

const mediaTemplate = `
=== Media Details ===

ID:      {{.ID}}
Card ID: {{.CardID}}
Name:    {{.Name}}
Type:    {{.Type}}
Size:    {{len .Data}} bytes (base64)
`

const usageTemplate = `
Card Manager

Usage:
  cardman [OPTIONS] COMMAND

Options:
  --version            Show version information
  --db PATH            Path to record database (default: cardman.db)
  --session-db PATH    Path to session database (default: cardman-session.db)

Commands:
  login                     Unlock with PIN
  logout                    Lock the session
  status                    Show session status
  reset-pin                 Reset PIN via security question
  add <card|sheet|media>    Create a record
  list <cards|sheets>       List records
  list media <card-id>      List attachments of a card
  get <card|sheet|media> <id>     Show record details
  update <card|sheet> <id>        Edit a record
  delete <card|sheet|media> <id>  Delete a record

Examples:
  cardman login
  cardman add card
  cardman list cards
  cardman get sheet 3
  cardman update sheet 3
  cardman delete card 7
`

func PrintUsage() {
	fmt.Print(usageTemplate)
}
